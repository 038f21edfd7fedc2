package vertex_layout

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrUnsupportedVertexFormat is returned when an attribute format has no WebGPU vertex format equivalent.
var ErrUnsupportedVertexFormat = errors.New("vertex_layout: format has no WebGPU vertex format")

// ErrBindingOutOfRange is returned when an attribute binding cannot be a vertex buffer slot.
var ErrBindingOutOfRange = errors.New("vertex_layout: binding out of range")

// MaxVertexBindings bounds the vertex buffer slots BufferLayouts will emit.
const MaxVertexBindings = MaxVertexAttributes

// wgpuVertexFormatMap maps the formats WebGPU can fetch as vertex data to their wgpu equivalent.
// Single-channel 8/16-bit, three-channel 8/16-bit, BGRA and depth/stencil formats have no vertex equivalent.
var wgpuVertexFormatMap = map[common.Format]wgpu.VertexFormat{
	common.FormatR32Uint:           wgpu.VertexFormatUint32,
	common.FormatR32Float:          wgpu.VertexFormatFloat32,
	common.FormatR8G8Unorm:         wgpu.VertexFormatUnorm8x2,
	common.FormatR16G16Unorm:       wgpu.VertexFormatUnorm16x2,
	common.FormatR16G16Float:       wgpu.VertexFormatFloat16x2,
	common.FormatR32G32Uint:        wgpu.VertexFormatUint32x2,
	common.FormatR32G32Float:       wgpu.VertexFormatFloat32x2,
	common.FormatR32G32B32Uint:     wgpu.VertexFormatUint32x3,
	common.FormatR32G32B32Float:    wgpu.VertexFormatFloat32x3,
	common.FormatR8G8B8A8Unorm:     wgpu.VertexFormatUnorm8x4,
	common.FormatR16G16B16A16Unorm: wgpu.VertexFormatUnorm16x4,
	common.FormatR16G16B16A16Float: wgpu.VertexFormatFloat16x4,
	common.FormatR32G32B32A32Uint:  wgpu.VertexFormatUint32x4,
	common.FormatR32G32B32A32Float: wgpu.VertexFormatFloat32x4,
}

// wgpuVertexFormatSizes is the number of bytes WebGPU fetches for each vertex format.
var wgpuVertexFormatSizes = map[wgpu.VertexFormat]uint32{
	wgpu.VertexFormatUint32:    4,
	wgpu.VertexFormatFloat32:   4,
	wgpu.VertexFormatUnorm8x2:  2,
	wgpu.VertexFormatUnorm16x2: 4,
	wgpu.VertexFormatFloat16x2: 4,
	wgpu.VertexFormatUint32x2:  8,
	wgpu.VertexFormatFloat32x2: 8,
	wgpu.VertexFormatUint32x3:  12,
	wgpu.VertexFormatFloat32x3: 12,
	wgpu.VertexFormatUnorm8x4:  4,
	wgpu.VertexFormatUnorm16x4: 8,
	wgpu.VertexFormatFloat16x4: 8,
	wgpu.VertexFormatUint32x4:  16,
	wgpu.VertexFormatFloat32x4: 16,
}

// ToVertexFormat maps a format to the WebGPU vertex format with the same memory representation.
//
// Parameters:
//   - format: the format to convert
//
// Returns:
//   - wgpu.VertexFormat: the matching vertex format
//   - bool: false if WebGPU has no vertex format for this format
func ToVertexFormat(format common.Format) (wgpu.VertexFormat, bool) {
	vf, ok := wgpuVertexFormatMap[format]
	return vf, ok
}

// FetchSize returns the number of bytes a GPU reads for one attribute of the given format.
// It is the WebGPU vertex format size when one exists and ToStride otherwise. The two only differ for
// R16G16_UNORM, whose ToStride width is 2 while Unorm16x2 reads 4 bytes. Producers that pack attributes
// for upload use FetchSize for offsets so attributes never overlap.
//
// Parameters:
//   - format: the attribute format
//
// Returns:
//   - uint32: the fetch size in bytes
func FetchSize(format common.Format) uint32 {
	if vf, ok := wgpuVertexFormatMap[format]; ok {
		return wgpuVertexFormatSizes[vf]
	}
	return ToStride(format)
}

// BufferLayouts converts the layout into the WebGPU vertex buffer layouts consumed by a render pipeline.
// The returned slice is indexed by binding: entry i describes vertex buffer slot i. Slots below the highest
// binding that no attribute reads are filled with a VertexStepModeVertexBufferNotUsed placeholder.
// Each buffer's ArrayStride is the sum of the FetchSize of the attributes read from it.
// The empty layout produces no buffers.
//
// Parameters:
//   - stepMode: the step mode applied to every used buffer (e.g., wgpu.VertexStepModeVertex)
//
// Returns:
//   - []wgpu.VertexBufferLayout: buffer layouts indexed by binding
//   - error: an error wrapping ErrUnsupportedVertexFormat if an attribute cannot be fetched by WebGPU,
//     or ErrBindingOutOfRange if a binding is MaxVertexBindings or above
func (l VertexLayout) BufferLayouts(stepMode wgpu.VertexStepMode) ([]wgpu.VertexBufferLayout, error) {
	if l.IsEmpty() {
		return nil, nil
	}

	var maxBinding uint32
	for i, a := range l.attributes {
		if _, ok := ToVertexFormat(a.Format); !ok {
			return nil, fmt.Errorf("attribute %d (%s): %w: %s", i, a.Semantic, ErrUnsupportedVertexFormat, a.Format)
		}
		if a.Binding >= MaxVertexBindings {
			return nil, fmt.Errorf("attribute %d (%s): %w: %d", i, a.Semantic, ErrBindingOutOfRange, a.Binding)
		}
		maxBinding = max(maxBinding, a.Binding)
	}

	result := make([]wgpu.VertexBufferLayout, maxBinding+1)
	for i := range result {
		result[i].StepMode = wgpu.VertexStepModeVertexBufferNotUsed
	}

	for _, a := range l.attributes {
		vf, _ := ToVertexFormat(a.Format)
		buf := &result[a.Binding]
		buf.StepMode = stepMode
		buf.Attributes = append(buf.Attributes, wgpu.VertexAttribute{
			Format:         vf,
			Offset:         uint64(a.Offset),
			ShaderLocation: a.Location,
		})
		buf.ArrayStride += uint64(FetchSize(a.Format))
	}
	return result, nil
}
