package region

import (
	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/mesh"
)

// Shape is one primitive of the fallback head. Each shape owns one or two
// regions: single-region shapes set Front == Back, the shared cranium shape
// splits by the sign of the hit point's Z relative to the shape center.
type Shape struct {
	Mesh   *mesh.Mesh
	Center math.Vec3
	Front  Name // hit with Z >= center Z
	Back   Name // hit with Z < center Z
}

// RegionAt resolves a hit point on this shape to its region name. No
// classifier is involved; ownership is direct.
func (s Shape) RegionAt(hit math.Vec3) Name {
	if hit.Z >= s.Center.Z {
		return s.Front
	}
	return s.Back
}

// Resolve builds the pick result for a hit on this shape.
func (s Shape) Resolve(hit math.Vec3) PickResult {
	name := s.RegionAt(hit)
	if name == None {
		return Miss
	}
	return PickResult{Region: name, Cursor: CursorPointer}
}

// FallbackHead is the procedural stand-in shown while the detailed mesh is
// loading or after it failed to load. It exposes the same toggle/hover
// contract as the detailed path; callers ray-test its shapes and resolve
// hits through Shape.Resolve.
type FallbackHead struct {
	Shapes []Shape
}

// BuildFallbackHead assembles the primitive head in normalized model space
// (the same space the detailed mesh occupies after normalization).
func BuildFallbackHead() *FallbackHead {
	craniumCenter := math.Vec3{Y: 0.22}
	jawCenter := math.Vec3{Y: -0.48, Z: 0.30}
	neckCenter := math.Vec3{Y: -0.78, Z: -0.05}
	leftEar := math.Vec3{X: -0.72, Y: 0.05}
	rightEar := math.Vec3{X: 0.72, Y: 0.05}
	leftEye := math.Vec3{X: -0.26, Y: 0.28, Z: 0.60}
	rightEye := math.Vec3{X: 0.26, Y: 0.28, Z: 0.60}

	return &FallbackHead{Shapes: []Shape{
		{
			// Cranium: front half is the forehead, back half the occiput
			Mesh:   mesh.Sphere(craniumCenter, 0.74, 16, 24),
			Center: craniumCenter,
			Front:  Frontal,
			Back:   Occipital,
		},
		{
			Mesh:   mesh.Sphere(jawCenter, 0.30, 10, 16),
			Center: jawCenter,
			Front:  Mandibular,
			Back:   Mandibular,
		},
		{
			Mesh:   mesh.Cylinder(neckCenter, math.Vec3{Y: 1}, 0.26, 0.55, 16),
			Center: neckCenter,
			Front:  Cervical,
			Back:   Cervical,
		},
		{
			Mesh:   mesh.Cylinder(leftEar, math.Vec3{X: 1}, 0.16, 0.14, 12),
			Center: leftEar,
			Front:  TemporalLeft,
			Back:   TemporalLeft,
		},
		{
			Mesh:   mesh.Cylinder(rightEar, math.Vec3{X: 1}, 0.16, 0.14, 12),
			Center: rightEar,
			Front:  TemporalRight,
			Back:   TemporalRight,
		},
		{
			Mesh:   mesh.Sphere(leftEye, 0.13, 8, 12),
			Center: leftEye,
			Front:  OrbitalLeft,
			Back:   OrbitalLeft,
		},
		{
			Mesh:   mesh.Sphere(rightEye, 0.13, 8, 12),
			Center: rightEye,
			Front:  OrbitalRight,
			Back:   OrbitalRight,
		},
	}}
}
