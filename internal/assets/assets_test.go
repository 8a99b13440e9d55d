package assets

import (
	"os"
	"path/filepath"
	"testing"
)

const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func writeModel(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write model: %v", err)
	}
	return path
}

func TestResolveSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeModel(t, first, "head.obj", triangleOBJ)
	writeModel(t, second, "head.obj", triangleOBJ)

	m := NewManager([]string{first, second})
	path, err := m.Resolve("head.obj")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if filepath.Dir(path) != first {
		t.Errorf("resolved %s, want the first search dir to win", path)
	}
}

func TestResolveAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	abs := writeModel(t, dir, "custom.obj", triangleOBJ)

	m := NewManager(nil)
	path, err := m.Resolve(abs)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if path != abs {
		t.Errorf("resolved %s, want %s", path, abs)
	}
}

func TestResolveDefaultName(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, DefaultModelName, triangleOBJ)

	m := NewManager([]string{dir})
	if _, err := m.Resolve(""); err != nil {
		t.Errorf("empty name did not fall back to the default model: %v", err)
	}
}

func TestResolveNotFound(t *testing.T) {
	m := NewManager([]string{t.TempDir()})
	if _, err := m.Resolve("missing.obj"); err == nil {
		t.Error("expected error resolving a missing model")
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "head.obj", triangleOBJ)
	writeModel(t, dir, "head.txt", "not a mesh")

	m := NewManager([]string{dir})

	loaded, err := m.Load("head.obj")
	if err != nil {
		t.Fatalf("Load(obj) error: %v", err)
	}
	if loaded.TriangleCount() != 1 {
		t.Errorf("loaded %d triangles, want 1", loaded.TriangleCount())
	}

	if _, err := m.Load("head.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "head.obj", triangleOBJ)

	m := NewManager([]string{dir})
	first, err := m.Load("head.obj")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	second, err := m.Load("head.obj")
	if err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if first != second {
		t.Error("second load did not return the cached mesh")
	}

	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("cache stats hits=%d misses=%d, want 1/1", hits, misses)
	}
}

func TestLoadAsync(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "head.obj", triangleOBJ)

	m := NewManager([]string{dir})

	res := <-m.LoadAsync("head.obj")
	if res.Err != nil {
		t.Fatalf("async load error: %v", res.Err)
	}
	if res.Mesh.VertexCount() != 3 {
		t.Errorf("async load returned %d vertices, want 3", res.Mesh.VertexCount())
	}

	res = <-m.LoadAsync("missing.obj")
	if res.Err == nil {
		t.Error("expected async load error for missing model")
	}
}
