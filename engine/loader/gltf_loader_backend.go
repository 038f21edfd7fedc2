package loader

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-layout/common"
	"go.uber.org/zap"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct {
	interleaved bool

	// pool runs per-mesh extraction. Workers idle-exit, so a loader that is not loading holds no goroutines.
	pool worker.DynamicWorkerPool
}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
//
// Parameters:
//   - interleaved: true to pack every attribute into binding 0
//   - workers: the maximum number of concurrent extraction workers
//
// Returns:
//   - gltfLoaderBackend: the loader backend for glTF/GLB files
func newGLTFLoaderBackend(interleaved bool, workers int) gltfLoaderBackend {
	return &gltfLoaderBackendImpl{
		interleaved: interleaved,
		pool:        worker.NewDynamicWorkerPool(workers, 256, 1*time.Second),
	}
}

func (b *gltfLoaderBackendImpl) Load(path string) ([]MeshLayout, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}
	return b.extract(parser)
}

func (b *gltfLoaderBackendImpl) LoadReader(r io.Reader, isGLB bool) ([]MeshLayout, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, err
	}
	return b.extract(parser)
}

// extract runs one task per mesh on the worker pool and flattens the results in document order.
// The first failing mesh (by index) determines the returned error.
func (b *gltfLoaderBackendImpl) extract(parser gltfParser) ([]MeshLayout, error) {
	extractor := newGLTFLayoutExtractor(parser, b.interleaved)
	meshCount := extractor.MeshCount()

	perMesh := make([][]MeshLayout, meshCount)
	errs := make([]error, meshCount)

	var wg sync.WaitGroup
	for i := 0; i < meshCount; i++ {
		wg.Add(1)
		meshIndex := i
		b.pool.SubmitTask(worker.Task{
			ID: meshIndex,
			Do: func() (any, error) {
				defer wg.Done()
				perMesh[meshIndex], errs[meshIndex] = extractor.ExtractMesh(meshIndex)
				return nil, errs[meshIndex]
			},
		})
	}
	wg.Wait()

	var result []MeshLayout
	for i := range perMesh {
		if errs[i] != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, errs[i])
		}
		result = append(result, perMesh[i]...)
	}

	common.Logger().Debug("extracted glTF vertex layouts",
		zap.Int("meshes", meshCount),
		zap.Int("primitives", len(result)))
	return result, nil
}
