package mesh

import (
	gomath "math"
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

func TestSphereVerticesOnSurface(t *testing.T) {
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	const radius = 0.5
	m := Sphere(center, radius, 8, 12)

	if m.TriangleCount() == 0 {
		t.Fatal("sphere has no triangles")
	}
	for i, p := range m.Positions {
		d := p.Distance(center)
		if math.Abs(d-radius) > 1e-4 {
			t.Fatalf("vertex %d at distance %v from center, want %v", i, d, radius)
		}
	}
}

func TestSphereIndexBounds(t *testing.T) {
	m := Sphere(math.Vec3{}, 1, 4, 6)
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range (%d vertices)", idx, m.VertexCount())
		}
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("index count %d not a multiple of 3", len(m.Indices))
	}
}

func TestCylinderExtent(t *testing.T) {
	const radius = 0.25
	const segments = 10
	m := Cylinder(math.Vec3{}, math.Vec3{Y: 1}, radius, 2, segments)

	b := m.Bounds()
	const eps = 1e-4
	if math.Abs(b.Min.Y+1) > eps || math.Abs(b.Max.Y-1) > eps {
		t.Errorf("cylinder Y extent [%v, %v], want [-1, 1]", b.Min.Y, b.Max.Y)
	}

	// Ring vertices trace a regular polygon, so the lateral extent lies
	// between the apothem and the circumradius.
	apothem := radius * float32(gomath.Cos(gomath.Pi/segments))
	for _, ext := range [...]float32{b.Max.X, -b.Min.X, b.Max.Z, -b.Min.Z} {
		if ext < apothem-eps || ext > radius+eps {
			t.Errorf("cylinder lateral extent %v outside [%v, %v]", ext, apothem, radius)
		}
	}
}

func TestCylinderArbitraryAxis(t *testing.T) {
	// Ear stub: cylinder along X
	m := Cylinder(math.Vec3{X: 0.7}, math.Vec3{X: 1}, 0.1, 0.2, 8)

	b := m.Bounds()
	const eps = 1e-4
	if math.Abs(b.Min.X-0.6) > eps || math.Abs(b.Max.X-0.8) > eps {
		t.Errorf("cylinder X extent [%v, %v], want [0.6, 0.8]", b.Min.X, b.Max.X)
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range (%d vertices)", idx, m.VertexCount())
		}
	}
}
