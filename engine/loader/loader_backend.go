package loader

import "io"

// loaderBackend defines the generic interface for deriving mesh layouts from files or streams.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load derives the layouts of every mesh primitive in the file at the given path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - []MeshLayout: the layouts in document order
	//   - error: error if loading fails
	Load(path string) ([]MeshLayout, error)

	// LoadReader derives the layouts of every mesh primitive from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data, false for text-based formats
	//
	// Returns:
	//   - []MeshLayout: the layouts in document order
	//   - error: error if loading fails
	LoadReader(r io.Reader, isGLB bool) ([]MeshLayout, error)
}
