package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithInterleaved is an option builder that selects how extracted attributes are assigned to vertex buffers.
// Interleaved layouts (the default) place every attribute in binding 0 at running offsets.
// Non-interleaved layouts give each attribute its own binding at offset 0.
//
// Parameters:
//   - interleaved: true for a single interleaved buffer, false for one buffer per attribute
//
// Returns:
//   - LoaderBuilderOption: a function that applies the interleaved option to a loader
func WithInterleaved(interleaved bool) LoaderBuilderOption {
	return func(l *loader) {
		l.interleaved = interleaved
	}
}

// WithWorkers is an option builder that sets the number of workers extracting meshes in parallel.
// Values below 1 are clamped to 1.
//
// Parameters:
//   - workers: the maximum number of concurrent extraction workers
//
// Returns:
//   - LoaderBuilderOption: a function that applies the workers option to a loader
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(workers, 1)
	}
}

// WithLayouts is an option builder that pre-populates the layout cache.
//
// Parameters:
//   - key: the cache key for the layouts
//   - layouts: the mesh layouts to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the layouts option to a loader
func WithLayouts(key string, layouts []MeshLayout) LoaderBuilderOption {
	return func(l *loader) {
		l.layoutCache[key] = layouts
	}
}
