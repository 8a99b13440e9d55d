package mesh

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

// quad returns two triangles forming a unit square in the XY plane.
func quad() *Mesh {
	return &Mesh{
		Positions: []math.Vec3{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestBounds(t *testing.T) {
	m := &Mesh{Positions: []math.Vec3{
		{X: -1, Y: 2, Z: 0.5},
		{X: 3, Y: -4, Z: 0},
		{X: 0, Y: 0, Z: -2},
	}}
	b := m.Bounds()
	if b.Min != (math.Vec3{X: -1, Y: -4, Z: -2}) {
		t.Errorf("Bounds().Min = %v", b.Min)
	}
	if b.Max != (math.Vec3{X: 3, Y: 2, Z: 0.5}) {
		t.Errorf("Bounds().Max = %v", b.Max)
	}
	if c := b.Center(); c != (math.Vec3{X: 1, Y: -1, Z: -0.75}) {
		t.Errorf("Bounds().Center() = %v", c)
	}
}

func TestBoundsEmpty(t *testing.T) {
	var m Mesh
	if b := m.Bounds(); b != (Bounds{}) {
		t.Errorf("empty mesh Bounds() = %v, want zero", b)
	}
}

func TestRecomputeNormalsFlatQuad(t *testing.T) {
	m := quad()
	m.RecomputeNormals()

	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("got %d normals for %d vertices", len(m.Normals), len(m.Positions))
	}
	want := math.Vec3{Z: 1}
	for i, n := range m.Normals {
		if n.Distance(want) > 1e-5 {
			t.Errorf("normal[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	m := quad()
	m.RecomputeNormals()
	c := m.Clone()

	c.Positions[0].X = 99
	c.Indices[0] = 3
	if m.Positions[0].X == 99 || m.Indices[0] == 3 {
		t.Error("mutating clone changed the original mesh")
	}
}

func TestTriangleCount(t *testing.T) {
	if got := quad().TriangleCount(); got != 2 {
		t.Errorf("TriangleCount() = %d, want 2", got)
	}
}
