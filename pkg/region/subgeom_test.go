package region

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/mesh"
)

var subgeomAnchors = []Anchor{
	{Name: "a", Clickable: true},
	{Name: "b", Clickable: true},
	{Name: "c", Clickable: true},
	{Clickable: false}, // dummy
}

// stripMesh builds a mesh with n triangles over a shared vertex strip.
func stripMesh(vertexCount int, indices []uint32) *mesh.Mesh {
	m := &mesh.Mesh{Indices: indices}
	for i := 0; i < vertexCount; i++ {
		m.Positions = append(m.Positions, math.Vec3{X: float32(i)})
		m.Normals = append(m.Normals, math.Vec3{Z: 1})
	}
	return m
}

func TestSubMeshMajorityAssignment(t *testing.T) {
	// Triangle 0: 2 votes for a; triangle 1: 3 votes for b
	m := stripMesh(6, []uint32{0, 1, 2, 3, 4, 5})
	classes := []int{0, 0, 1, 1, 1, 1}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)
	if len(subs) != 2 {
		t.Fatalf("got %d sub-meshes, want 2", len(subs))
	}
	if subs[0].Name != "a" || len(subs[0].Indices) != 3 {
		t.Errorf("sub[0] = %s with %d indices, want a with 3", subs[0].Name, len(subs[0].Indices))
	}
	if subs[1].Name != "b" || len(subs[1].Indices) != 3 {
		t.Errorf("sub[1] = %s with %d indices, want b with 3", subs[1].Name, len(subs[1].Indices))
	}
}

func TestSubMeshMajorityTriangleAppearsExactlyOnce(t *testing.T) {
	m := stripMesh(6, []uint32{0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5})
	classes := []int{0, 0, 1, 1, 2, 2}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)

	total := 0
	for _, s := range subs {
		total += len(s.Indices) / 3
	}
	// Triangles: (0,0,1)->a, (0,1,1)->b, (1,1,2)->b, (1,2,2)->c; each with a
	// clear majority lands in exactly one sub-mesh.
	if total != 4 {
		t.Errorf("majority triangles in sub-meshes = %d, want 4", total)
	}
}

func TestSubMeshEvenSplitAssignedToNone(t *testing.T) {
	m := stripMesh(3, []uint32{0, 1, 2})
	classes := []int{0, 1, 2}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)
	if len(subs) != 0 {
		t.Errorf("1-1-1 split produced %d sub-meshes, want 0", len(subs))
	}
}

func TestSubMeshDummyMajorityDropped(t *testing.T) {
	m := stripMesh(3, []uint32{0, 1, 2})
	classes := []int{3, 3, 0}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)
	if len(subs) != 0 {
		t.Errorf("dummy-owned triangle produced %d sub-meshes, want 0", len(subs))
	}
}

func TestSubMeshCompactReindexing(t *testing.T) {
	// Two triangles for region a sharing vertices 1 and 2
	m := stripMesh(4, []uint32{0, 1, 2, 1, 2, 3})
	classes := []int{0, 0, 0, 0}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)
	if len(subs) != 1 {
		t.Fatalf("got %d sub-meshes, want 1", len(subs))
	}
	s := subs[0]
	// Shared vertices copied once: 4 unique vertices, 6 indices
	if len(s.Positions) != 4 || len(s.Normals) != 4 {
		t.Errorf("sub-mesh has %d positions / %d normals, want 4/4", len(s.Positions), len(s.Normals))
	}
	for _, idx := range s.Indices {
		if int(idx) >= len(s.Positions) {
			t.Fatalf("local index %d out of range (%d vertices)", idx, len(s.Positions))
		}
	}
}

func TestSubMeshVertexDataCopied(t *testing.T) {
	m := stripMesh(3, []uint32{0, 1, 2})
	classes := []int{0, 0, 0}

	subs := BuildSubMeshes(m, classes, subgeomAnchors)
	if len(subs) != 1 {
		t.Fatalf("got %d sub-meshes, want 1", len(subs))
	}

	subs[0].Positions[0].X = 99
	if m.Positions[0].X == 99 {
		t.Error("mutating sub-mesh changed the source mesh: vertex data is shared")
	}
}
