package pipeline

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineType identifies whether a pipeline is a compute pipeline or a render pipeline.
type PipelineType int

const (
	// PipelineTypeCompute indicates a compute pipeline with a single compute shader entry point.
	PipelineTypeCompute PipelineType = iota

	// PipelineTypeRender indicates a render pipeline with vertex and fragment shader entry points.
	PipelineTypeRender
)

var (
	// ErrNotRenderPipeline is returned when render state is requested from a compute pipeline.
	ErrNotRenderPipeline = errors.New("pipeline: not a render pipeline")

	// ErrMissingShader is returned when a render pipeline has no vertex or fragment shader.
	ErrMissingShader = errors.New("pipeline: missing shader")

	// ErrUnsupportedDepthFormat is returned when the depth format has no WebGPU texture format.
	ErrUnsupportedDepthFormat = errors.New("pipeline: unsupported depth format")
)

// depthTextureFormatMap maps depth/stencil formats to the WebGPU texture format used for the depth attachment.
var depthTextureFormatMap = map[common.Format]wgpu.TextureFormat{
	common.FormatD16Unorm:         wgpu.TextureFormatDepth16Unorm,
	common.FormatX8D24UnormPack32: wgpu.TextureFormatDepth24Plus,
	common.FormatD32Float:         wgpu.TextureFormatDepth32Float,
	common.FormatS8Uint:           wgpu.TextureFormatStencil8,
	common.FormatD24UnormS8Uint:   wgpu.TextureFormatDepth24PlusStencil8,
	common.FormatD32FloatS8Uint:   wgpu.TextureFormatDepth32FloatStencil8,
}

// pipeline is the implementation of the Pipeline interface.
// It holds the shaders, vertex layout and fixed-function state needed to describe a GPU pipeline.
type pipeline struct {
	// pipelineType indicates the type of pipeline this is; compute or render
	pipelineType PipelineType
	// pipelineKey is the unique identifier for this pipeline, used for caching and lookups
	pipelineKey string

	vertexShader, fragmentShader, computeShader shader.Shader

	// vertexLayout describes how the vertex buffers bound to this pipeline are read.
	// When empty, the first layout reflected from the vertex shader is used.
	vertexLayout vertex_layout.VertexLayout
	stepMode     wgpu.VertexStepMode

	depthFormat       common.Format
	depthTestEnabled  bool
	depthWriteEnabled bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
	blendState        *wgpu.BlendState
}

// Pipeline defines the interface for a GPU pipeline description, encapsulating either a render pipeline
// (vertex + fragment shaders) or a compute pipeline (compute shader). A render pipeline consumes a
// vertex_layout.VertexLayout to build the vertex input state of its descriptor.
type Pipeline interface {
	// Type returns the type of the pipeline
	//
	// Returns:
	//   - PipelineType: the type of the pipeline (render or compute)
	Type() PipelineType

	// PipelineKey returns the unique key associated with this pipeline, used for caching and lookups.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader associated with the specified type if it exists, nil otherwise.
	//
	// Parameters:
	//   - shaderType: the type of shader to retrieve (vertex, fragment, or compute)
	//
	// Returns:
	//   - shader.Shader: the shader associated with the specified type, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// VertexLayout returns the vertex layout this pipeline reads its vertex buffers with.
	// An explicitly configured layout wins over the one reflected from the vertex shader.
	//
	// Returns:
	//   - vertex_layout.VertexLayout: the layout, empty for compute pipelines or when none is known
	VertexLayout() vertex_layout.VertexLayout

	// VertexState builds the wgpu vertex state for this pipeline from its vertex layout.
	//
	// Parameters:
	//   - module: the compiled vertex shader module
	//
	// Returns:
	//   - wgpu.VertexState: the vertex stage description
	//   - error: an error if this is not a render pipeline or the layout cannot be expressed in WebGPU
	VertexState(module *wgpu.ShaderModule) (wgpu.VertexState, error)

	// RenderPipelineDescriptor builds the full render pipeline descriptor. No GPU calls are made.
	//
	// Parameters:
	//   - layout: the pipeline layout, nil for an automatic layout
	//   - vs: the compiled vertex shader module
	//   - fs: the compiled fragment shader module
	//   - colorFormat: the format of the color target
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor ready for device.CreateRenderPipeline
	//   - error: an error if the pipeline is misconfigured
	RenderPipelineDescriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, colorFormat wgpu.TextureFormat) (*wgpu.RenderPipelineDescriptor, error)

	// DepthFormat returns the depth attachment format, FormatUndefined when there is no depth attachment.
	DepthFormat() common.Format

	// CullMode returns the cull mode configured for this pipeline.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	FrontFace() wgpu.FrontFace

	// BlendState returns the blend state configured for this pipeline, or nil if blending is disabled.
	BlendState() *wgpu.BlendState
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline interface. A PipelineType must be specified and provided upon creation.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - pipelineType: the type of pipeline to create (render or compute)
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified type and configuration
func NewPipeline(pipelineKey string, pipelineType PipelineType, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		pipelineType:      pipelineType,
		stepMode:          wgpu.VertexStepModeVertex,
		depthFormat:       common.FormatX8D24UnormPack32,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) Type() PipelineType {
	return p.pipelineType
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	case shader.ShaderTypeCompute:
		return p.computeShader
	default:
		return nil
	}
}

func (p *pipeline) VertexLayout() vertex_layout.VertexLayout {
	if p.pipelineType != PipelineTypeRender {
		return vertex_layout.VertexLayout{}
	}
	if !p.vertexLayout.IsEmpty() || p.vertexShader == nil {
		return p.vertexLayout
	}
	return p.vertexShader.VertexLayout(0)
}

func (p *pipeline) VertexState(module *wgpu.ShaderModule) (wgpu.VertexState, error) {
	if p.pipelineType != PipelineTypeRender {
		return wgpu.VertexState{}, ErrNotRenderPipeline
	}
	if p.vertexShader == nil {
		return wgpu.VertexState{}, fmt.Errorf("%w: vertex", ErrMissingShader)
	}

	buffers, err := p.VertexLayout().BufferLayouts(p.stepMode)
	if err != nil {
		return wgpu.VertexState{}, fmt.Errorf("pipeline %q: %w", p.pipelineKey, err)
	}

	return wgpu.VertexState{
		Module:     module,
		EntryPoint: p.vertexShader.EntryPoint(),
		Buffers:    buffers,
	}, nil
}

func (p *pipeline) RenderPipelineDescriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, colorFormat wgpu.TextureFormat) (*wgpu.RenderPipelineDescriptor, error) {
	vertex, err := p.VertexState(vs)
	if err != nil {
		return nil, err
	}
	if p.fragmentShader == nil {
		return nil, fmt.Errorf("%w: fragment", ErrMissingShader)
	}

	target := wgpu.ColorTargetState{
		Format:    colorFormat,
		WriteMask: p.writeMask,
	}
	if p.blendState != nil {
		target.Blend = p.blendState
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey + " Render Pipeline",
		Layout: layout,
		Vertex: vertex,
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: p.fragmentShader.EntryPoint(),
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}

	if p.depthFormat != common.FormatUndefined {
		depthFormat, ok := depthTextureFormatMap[p.depthFormat]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDepthFormat, p.depthFormat)
		}
		depthCompare := wgpu.CompareFunctionLess
		if !p.depthTestEnabled {
			depthCompare = wgpu.CompareFunctionAlways
		}
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: p.depthWriteEnabled,
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	return desc, nil
}

func (p *pipeline) DepthFormat() common.Format {
	return p.depthFormat
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}
