package shader

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies which pipeline stage a shader belongs to.
type ShaderType int

const (
	// ShaderTypeCompute indicates a shader containing a @compute entry point.
	ShaderTypeCompute ShaderType = iota

	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the WGSL source and the reflection data derived from it.
type shader struct {
	key           string
	source        string
	shaderType    ShaderType
	vertexLayouts []vertex_layout.VertexLayout
	entryPoint    string
	module        *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a loaded and reflected WGSL shader. It exposes the shader's
// unique key, source code, entry point, module descriptor and, for vertex shaders, the vertex
// layouts reflected from its vertex input structs.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// ShaderType returns the pipeline stage of this shader.
	//
	// Returns:
	//   - ShaderType: vertex, fragment or compute
	ShaderType() ShaderType

	// EntryPoint retrieves the entry point function name for this shader's stage.
	//
	// Returns:
	//   - string: the entry point name, or an empty string if none was found
	EntryPoint() string

	// Module retrieves the shader module descriptor used to create the GPU shader module.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the WGSL module descriptor
	Module() *wgpu.ShaderModuleDescriptor

	// VertexLayout retrieves the vertex layout reflected from the vertex input struct at index.
	//
	// Parameters:
	//   - index: the vertex input struct index, in source order
	//
	// Returns:
	//   - vertex_layout.VertexLayout: the reflected layout, or the empty layout if index is out of range
	VertexLayout(index int) vertex_layout.VertexLayout

	// VertexLayouts retrieves every reflected vertex layout in source order.
	// Non-vertex shaders return nil.
	//
	// Returns:
	//   - []vertex_layout.VertexLayout: the reflected layouts
	VertexLayouts() []vertex_layout.VertexLayout
}

var _ Shader = &shader{}

// NewShader creates a Shader from WGSL source and reflects it for the given stage.
//
// Parameters:
//   - key: the unique key of this shader
//   - shaderType: the pipeline stage of the shader
//   - source: the WGSL source code
//
// Returns:
//   - Shader: the reflected shader
func NewShader(key string, shaderType ShaderType, source string) Shader {
	s := &shader{
		key:        key,
		shaderType: shaderType,
	}
	s.parseSource(source)
	return s
}

// NewShaderFromPath reads WGSL source from disk and creates a Shader from it.
//
// Parameters:
//   - key: the unique key of this shader
//   - shaderType: the pipeline stage of the shader
//   - path: the path of the WGSL source file
//
// Returns:
//   - Shader: the reflected shader
//   - error: an error if the file could not be read
func NewShaderFromPath(key string, shaderType ShaderType, path string) (Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to read source file %q: %w", path, err)
	}
	return NewShader(key, shaderType, string(data)), nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) VertexLayout(index int) vertex_layout.VertexLayout {
	if index < 0 || index >= len(s.vertexLayouts) {
		return vertex_layout.VertexLayout{}
	}
	return s.vertexLayouts[index]
}

func (s *shader) VertexLayouts() []vertex_layout.VertexLayout {
	return s.vertexLayouts
}

// parseSource sets the WGSL source, builds the shader module descriptor, parses the
// entry point name and, for vertex shaders, reflects the vertex input layouts.
func (s *shader) parseSource(source string) {
	s.source = source
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	s.entryPoint = parseEntryPoint(s.source, s.shaderType)
	if s.shaderType == ShaderTypeVertex {
		s.vertexLayouts = parseVertexLayouts(s.source)
	}
}
