package pipeline

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"go.uber.org/zap"
)

// ErrNilPipeline is returned when a create function succeeds without producing a pipeline,
// including a nil pointer wrapped in the Pipeline interface.
var ErrNilPipeline = errors.New("pipeline: create returned a nil pipeline")

// cacheKey buckets cached pipelines by pipeline key and vertex layout hash.
type cacheKey struct {
	pipelineKey string
	layoutHash  uint64
}

// cacheEntry pairs a cached pipeline with the exact layout it was created for.
type cacheEntry struct {
	layout   vertex_layout.VertexLayout
	pipeline Pipeline
}

// PipelineCache shares pipelines between draw calls whose pipeline key and vertex layout match.
// Layouts are matched with vertex_layout.VertexLayout.Equal, so two layouts only share a pipeline
// when every attribute is structurally identical and in the same order.
//
// PipelineCache is safe for concurrent use. It uses RWMutex with double-check locking, so a create
// function runs at most once per distinct key and layout.
type PipelineCache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]cacheEntry
	size    int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPipelineCache creates an empty PipelineCache.
//
// Returns:
//   - *PipelineCache: the new cache
func NewPipelineCache() *PipelineCache {
	return &PipelineCache{
		entries: make(map[cacheKey][]cacheEntry),
	}
}

// GetOrCreate returns the pipeline cached for key and layout, or calls create and caches its result.
// A failed create is not cached.
//
// Parameters:
//   - key: the pipeline key (typically the shader pair and fixed-function state identifier)
//   - layout: the vertex layout the pipeline reads
//   - create: builds the pipeline on a cache miss
//
// Returns:
//   - Pipeline: the cached or newly created pipeline
//   - error: the error returned by create, or ErrNilPipeline
func (c *PipelineCache) GetOrCreate(key string, layout vertex_layout.VertexLayout, create func() (Pipeline, error)) (Pipeline, error) {
	ck := cacheKey{pipelineKey: key, layoutHash: layout.Hash()}

	c.mu.RLock()
	p, ok := c.lookupLocked(ck, layout)
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		common.Logger().Debug("pipeline cache hit", zap.String("key", key), zap.Uint32("stride", layout.Stride()))
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.lookupLocked(ck, layout); ok {
		c.hits.Add(1)
		return p, nil
	}

	c.misses.Add(1)
	common.Logger().Debug("pipeline cache miss",
		zap.String("key", key),
		zap.Int("attributes", layout.AttributeCount()),
		zap.Uint32("stride", layout.Stride()))

	p, err := create()
	if err != nil {
		return nil, err
	}
	if isNilPipeline(p) {
		return nil, ErrNilPipeline
	}

	c.entries[ck] = append(c.entries[ck], cacheEntry{layout: layout, pipeline: p})
	c.size++
	return p, nil
}

// Get returns the pipeline cached for key and layout without creating one.
//
// Parameters:
//   - key: the pipeline key
//   - layout: the vertex layout the pipeline reads
//
// Returns:
//   - Pipeline: the cached pipeline, or nil
//   - bool: true if a pipeline was found
func (c *PipelineCache) Get(key string, layout vertex_layout.VertexLayout) (Pipeline, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookupLocked(cacheKey{pipelineKey: key, layoutHash: layout.Hash()}, layout)
}

// lookupLocked scans the bucket for an entry with an equal layout. The caller must hold mu.
func (c *PipelineCache) lookupLocked(ck cacheKey, layout vertex_layout.VertexLayout) (Pipeline, bool) {
	for _, e := range c.entries[ck] {
		if e.layout.Equal(layout) {
			return e.pipeline, true
		}
	}
	return nil, false
}

// isNilPipeline reports whether p is nil or holds a nil pointer.
func isNilPipeline(p Pipeline) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Stats returns the number of cache hits and misses since creation or the last Clear.
func (c *PipelineCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Size returns the number of cached pipelines.
func (c *PipelineCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Clear drops every cached pipeline and resets the statistics.
func (c *PipelineCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]cacheEntry)
	c.size = 0
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}
