// Package assets locates and loads head model meshes.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/painscape/painscape/pkg/mesh"
)

// DefaultModelName is looked up in the search directories when no explicit
// model file is configured.
const DefaultModelName = "head.obj"

// Manager resolves model names against its search directories and loads
// meshes, caching by resolved path.
type Manager struct {
	searchDirs []string
	cache      *Cache
	mu         sync.RWMutex
}

// NewManager creates an asset manager over the given search directories.
// Directories are searched in order (first hit wins).
func NewManager(searchDirs []string) *Manager {
	return &Manager{
		searchDirs: searchDirs,
		cache:      NewCache(),
	}
}

// AddSearchDir appends a directory to the search list.
func (m *Manager) AddSearchDir(dir string) {
	m.mu.Lock()
	m.searchDirs = append(m.searchDirs, dir)
	m.mu.Unlock()
}

// Resolve maps a model name to an existing file path. Absolute paths and
// paths that already exist are returned as-is; otherwise the search
// directories are scanned in order.
func (m *Manager) Resolve(name string) (string, error) {
	if name == "" {
		name = DefaultModelName
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("model %s: %w", name, err)
		}
		return name, nil
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	m.mu.RLock()
	dirs := m.searchDirs
	m.mu.RUnlock()

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("model %s not found in %v", name, dirs)
}

// Load resolves and loads a model by name, returning the raw mesh. The
// parser is chosen by file extension (.obj or .stl). Loaded meshes are
// cached by resolved path.
func (m *Manager) Load(name string) (*mesh.Mesh, error) {
	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}

	if cached, ok := m.cache.Get(path); ok {
		return cached, nil
	}

	var loaded *mesh.Mesh
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		loaded, err = mesh.ParseOBJ(path)
	case ".stl":
		loaded, err = mesh.ParseSTL(path)
	default:
		return nil, fmt.Errorf("model %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing model %s: %w", path, err)
	}

	m.cache.Set(path, loaded)
	return loaded, nil
}

// Result carries the outcome of an asynchronous load.
type Result struct {
	Mesh *mesh.Mesh
	Err  error
}

// LoadAsync loads a model on a background goroutine. The returned channel
// is buffered, so the goroutine never blocks even if the caller abandons
// the load.
func (m *Manager) LoadAsync(name string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		loaded, err := m.Load(name)
		ch <- Result{Mesh: loaded, Err: err}
	}()
	return ch
}

// Cache is an in-memory mesh cache keyed by resolved path.
type Cache struct {
	meshes map[string]*mesh.Mesh
	mu     sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		meshes: make(map[string]*mesh.Mesh),
	}
}

// Get retrieves a mesh from cache.
func (c *Cache) Get(key string) (*mesh.Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.meshes[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

// Set stores a mesh in cache.
func (c *Cache) Set(key string, m *mesh.Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes[key] = m
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes = make(map[string]*mesh.Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
