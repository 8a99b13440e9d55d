// Package picking provides ray casting against the head mesh.
package picking

import (
	gomath "math"

	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/mesh"
)

// Ray represents a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// BoundsOf builds the AABB of a mesh.
func BoundsOf(m *mesh.Mesh) AABB {
	b := m.Bounds()
	return AABB{Min: b.Min, Max: b.Max}
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport
// dimensions. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject near and far points
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection
// occurred. If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origins := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	mins := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dirs[axis] != 0 {
			t1 := (mins[axis] - origins[axis]) / dirs[axis]
			t2 := (maxs[axis] - origins[axis]) / dirs[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

const triEpsilon = 1e-7

// IntersectTriangle tests the ray against one triangle (Moller-Trumbore).
// Backfaces are culled so a click through the head never lands on its far
// side.
func (r Ray) IntersectTriangle(v0, v1, v2 math.Vec3) (t float32, hit bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det < triEpsilon {
		return 0, false // Parallel or backfacing
	}
	inv := 1 / det

	s := r.Origin.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = edge2.Dot(q) * inv
	if t < triEpsilon {
		return 0, false
	}
	return t, true
}

// MeshHit describes the closest triangle a ray intersects.
type MeshHit struct {
	Triangle int // Triangle index into the mesh index buffer
	T        float32
	Point    math.Vec3
}

// IntersectMesh finds the closest front-facing triangle the ray hits.
// The bounding-box test rejects clean misses before the per-triangle scan.
func (r Ray) IntersectMesh(m *mesh.Mesh) (MeshHit, bool) {
	if _, ok := r.IntersectAABB(BoundsOf(m)); !ok {
		return MeshHit{}, false
	}

	best := MeshHit{Triangle: -1, T: float32(gomath.MaxFloat32)}
	for tri := 0; tri < m.TriangleCount(); tri++ {
		i := tri * 3
		v0 := m.Positions[m.Indices[i]]
		v1 := m.Positions[m.Indices[i+1]]
		v2 := m.Positions[m.Indices[i+2]]

		if t, ok := r.IntersectTriangle(v0, v1, v2); ok && t < best.T {
			best.Triangle = tri
			best.T = t
		}
	}
	if best.Triangle < 0 {
		return MeshHit{}, false
	}
	best.Point = r.Origin.Add(r.Direction.Scale(best.T))
	return best, true
}
