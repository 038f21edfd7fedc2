package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"github.com/cogentcore/webgpu/wgpu"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// MeshLayout is the vertex layout of a single mesh primitive.
type MeshLayout struct {
	// MeshName is the glTF mesh name, or mesh_<index> when the mesh is unnamed.
	MeshName string
	// MeshIndex is the index of the mesh in the document.
	MeshIndex int
	// PrimitiveIndex is the index of the primitive within its mesh.
	PrimitiveIndex int
	// Layout describes how the primitive's vertex attributes are laid out.
	Layout vertex_layout.VertexLayout
	// Topology is the primitive topology the mesh is drawn with.
	Topology wgpu.PrimitiveTopology
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	interleaved bool
	workers     int

	layoutCache map[string][]MeshLayout

	backendType LoaderBackendType
	backend     loaderBackend
}

// Loader defines the public-facing interface for deriving vertex layouts from model files.
// It abstracts the file format (glTF, GLB, etc.) behind a generic backend and
// manages a cache of previously loaded layouts.
type Loader interface {
	// LoadLayouts reads a model file and returns one MeshLayout per mesh primitive in document order.
	// If the file is already cached (by file path), the cached layouts are returned.
	// The backend is selected based on the file extension (.gltf/.glb → glTF backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - []MeshLayout: the layouts of every primitive
	//   - error: error if loading fails
	LoadLayouts(path string) ([]MeshLayout, error)

	// LoadLayoutsReader reads a model from a reader stream and caches its layouts by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded layouts
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - []MeshLayout: the layouts of every primitive
	//   - error: error if loading fails
	LoadLayoutsReader(name string, r io.Reader, isGLB bool) ([]MeshLayout, error)

	// Get retrieves a copy of the cached layouts by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - []MeshLayout: the cached layouts or nil
	Get(name string) []MeshLayout

	// Layouts returns a copy of the full layout cache. Each slice is copied as well.
	//
	// Returns:
	//   - map[string][]MeshLayout: all cached layouts keyed by name
	Layouts() map[string][]MeshLayout

	// DistinctLayouts returns the structurally distinct layouts of a cached model in first-seen order.
	// Pipelines only need to be created once per distinct layout.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - []vertex_layout.VertexLayout: the distinct layouts, nil if the name is not cached
	DistinctLayouts(name string) []vertex_layout.VertexLayout
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:          sync.RWMutex{},
		interleaved: true,
		workers:     max(runtime.NumCPU()-1, 1),
		layoutCache: make(map[string][]MeshLayout),
		backendType: backendType,
	}

	for _, option := range options {
		option(l)
	}

	switch l.backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend(l.interleaved, l.workers)
	}
	return l
}

func (l *loader) LoadLayouts(path string) ([]MeshLayout, error) {
	l.mu.RLock()
	if cached, ok := l.layoutCache[path]; ok {
		l.mu.RUnlock()
		return slices.Clone(cached), nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	layouts, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.mu.Lock()
	l.layoutCache[path] = layouts
	l.mu.Unlock()

	return slices.Clone(layouts), nil
}

func (l *loader) LoadLayoutsReader(name string, r io.Reader, isGLB bool) ([]MeshLayout, error) {
	l.mu.RLock()
	if cached, ok := l.layoutCache[name]; ok {
		l.mu.RUnlock()
		return slices.Clone(cached), nil
	}
	l.mu.RUnlock()

	if l.backend == nil {
		return nil, fmt.Errorf("loader: no backend for type %d", l.backendType)
	}

	layouts, err := l.backend.LoadReader(r, isGLB)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.layoutCache[name] = layouts
	l.mu.Unlock()

	return slices.Clone(layouts), nil
}

func (l *loader) Get(name string) []MeshLayout {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.layoutCache[name])
}

func (l *loader) Layouts() map[string][]MeshLayout {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string][]MeshLayout, len(l.layoutCache))
	for k, v := range l.layoutCache {
		result[k] = slices.Clone(v)
	}
	return result
}

func (l *loader) DistinctLayouts(name string) []vertex_layout.VertexLayout {
	meshes := l.Get(name)
	if meshes == nil {
		return nil
	}

	distinct := make([]vertex_layout.VertexLayout, 0, len(meshes))
	for _, m := range meshes {
		seen := false
		for _, d := range distinct {
			if d.Equal(m.Layout) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, m.Layout)
		}
	}
	return distinct
}

// resolveBackend selects the backend for a file path based on its extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		if l.backend == nil {
			return nil, fmt.Errorf("loader: no backend for type %d", l.backendType)
		}
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}
