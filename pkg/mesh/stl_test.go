package mesh

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestParseASCIISTL(t *testing.T) {
	path := writeTempFile(t, "a.stl", []byte(`solid patch
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 1 1 0
  endloop
endfacet
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 1 1 0
    vertex 0 1 0
  endloop
endfacet
endsolid patch
`))

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL() error: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	// Shared corners must be welded: 6 corners, 4 unique positions
	if m.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4 (welded)", m.VertexCount())
	}
}

func TestParseBinarySTL(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1}) // normal
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{2, 0, 0})
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 2, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	path := writeTempFile(t, "b.stl", buf.Bytes())

	m, err := ParseSTL(path)
	if err != nil {
		t.Fatalf("ParseSTL() error: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", m.TriangleCount())
	}
	if m.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", m.VertexCount())
	}
	if len(m.Normals) != 3 {
		t.Errorf("got %d normals, want 3", len(m.Normals))
	}
}

func TestParseBinarySTLTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(5)) // claims 5 triangles, has none

	path := writeTempFile(t, "trunc.stl", buf.Bytes())
	if _, err := ParseSTL(path); err == nil {
		t.Error("ParseSTL() succeeded on truncated file, want error")
	}
}
