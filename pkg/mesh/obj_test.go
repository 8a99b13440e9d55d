package mesh

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp OBJ: %v", err)
	}
	return path
}

func TestParseOBJTriangles(t *testing.T) {
	path := writeTempOBJ(t, `
# simple tetrahedron-ish patch
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 3 4
`)
	m, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	if len(m.Normals) != 4 {
		t.Errorf("got %d normals, want 4", len(m.Normals))
	}
}

func TestParseOBJQuadFan(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	m, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("quad fan TriangleCount() = %d, want 2", m.TriangleCount())
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Fatalf("Indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestParseOBJSlashAndNegativeRefs(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 -1//1
`)
	m, err := ParseOBJ(path)
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	want := []uint32{0, 1, 2}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Fatalf("Indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"face index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"bad vertex", "v 0 0\n"},
		{"bad face ref", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempOBJ(t, tt.content)
			if _, err := ParseOBJ(path); err == nil {
				t.Error("ParseOBJ() succeeded, want error")
			}
		})
	}
}

func TestParseOBJMissingFile(t *testing.T) {
	if _, err := ParseOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("ParseOBJ() succeeded on missing file, want error")
	}
}
