package mesh

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

func TestNormalizeCentersAndScales(t *testing.T) {
	// Off-center box, 4 units tall
	src := &Mesh{
		Positions: []math.Vec3{
			{X: 10, Y: 0, Z: 5},
			{X: 12, Y: 4, Z: 5},
			{X: 10, Y: 4, Z: 7},
		},
		Indices: []uint32{0, 1, 2},
	}

	m := Normalize(src)

	b := m.Bounds()
	c := b.Center()
	const eps = 1e-5
	if math.Abs(c.X) > eps || math.Abs(c.Y) > eps || math.Abs(c.Z) > eps {
		t.Errorf("normalized center = %v, want origin", c)
	}
	if h := b.Size().Y; math.Abs(h-NormalizedHeight) > eps {
		t.Errorf("normalized height = %v, want %v", h, NormalizedHeight)
	}

	// Uniform scaling preserves aspect: source is 2 wide for 4 tall
	if w := b.Size().X; math.Abs(w-1) > eps {
		t.Errorf("normalized width = %v, want 1", w)
	}
}

func TestNormalizeDoesNotMutateSource(t *testing.T) {
	src := &Mesh{
		Positions: []math.Vec3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 3, Z: 1}, {X: 2, Y: 3, Z: 1}},
		Indices:   []uint32{0, 1, 2},
	}
	orig := src.Positions[0]

	Normalize(src)

	if src.Positions[0] != orig {
		t.Errorf("source mesh mutated: %v, want %v", src.Positions[0], orig)
	}
}

func TestNormalizeRecomputesNormals(t *testing.T) {
	src := quad()
	m := Normalize(src)
	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("got %d normals for %d vertices", len(m.Normals), len(m.Positions))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	m := Normalize(&Mesh{})
	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Errorf("empty mesh normalized to %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
}

func TestNormalizeFlatMeshKeepsScale(t *testing.T) {
	// Zero vertical extent: rescale would divide by zero, so scale is kept
	src := &Mesh{
		Positions: []math.Vec3{{X: 0, Y: 1, Z: 0}, {X: 4, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 4}},
		Indices:   []uint32{0, 1, 2},
	}
	m := Normalize(src)
	if w := m.Bounds().Size().X; math.Abs(w-4) > 1e-5 {
		t.Errorf("flat mesh width = %v, want 4", w)
	}
}
