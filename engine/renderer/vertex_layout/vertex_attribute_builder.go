package vertex_layout

// VertexAttributeBuilderOption is a functional option used to configure a VertexAttribute during construction.
type VertexAttributeBuilderOption func(*VertexAttribute)

// WithSemanticName sets the free-form semantic label of the attribute.
//
// Parameters:
//   - name: the label, typically the shader input variable name
//
// Returns:
//   - VertexAttributeBuilderOption: a function that sets the semantic name
func WithSemanticName(name string) VertexAttributeBuilderOption {
	return func(a *VertexAttribute) {
		a.SemanticName = name
	}
}

// WithBinding sets the vertex buffer binding slot of the attribute.
//
// Parameters:
//   - binding: the binding slot index
//
// Returns:
//   - VertexAttributeBuilderOption: a function that sets the binding
func WithBinding(binding uint32) VertexAttributeBuilderOption {
	return func(a *VertexAttribute) {
		a.Binding = binding
	}
}

// WithLocation sets the shader input location of the attribute.
//
// Parameters:
//   - location: the shader input location index
//
// Returns:
//   - VertexAttributeBuilderOption: a function that sets the location
func WithLocation(location uint32) VertexAttributeBuilderOption {
	return func(a *VertexAttribute) {
		a.Location = location
	}
}

// WithOffset sets the byte offset of the attribute within one vertex record.
//
// Parameters:
//   - offset: the byte offset
//
// Returns:
//   - VertexAttributeBuilderOption: a function that sets the offset
func WithOffset(offset uint32) VertexAttributeBuilderOption {
	return func(a *VertexAttribute) {
		a.Offset = offset
	}
}
