package vertex_layout

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-layout/common"
)

// VertexAttribute describes one field of a vertex record: what it means, how it is stored,
// which vertex buffer it is read from and which shader input it feeds.
// None of the fields are validated on their own; any combination is accepted.
type VertexAttribute struct {
	// Semantic is the logical role of the attribute.
	Semantic Semantic

	// SemanticName is a free-form label used when matching against shader reflection data.
	SemanticName string

	// Format is the in-buffer representation of the attribute.
	Format common.Format

	// Binding is the vertex buffer binding slot the attribute is read from.
	Binding uint32

	// Location is the shader input location the attribute feeds.
	Location uint32

	// Offset is the byte offset of the attribute within one vertex record of its binding.
	Offset uint32
}

// NewVertexAttribute creates a VertexAttribute with the given semantic and format.
// Binding, location and offset default to zero and the semantic name to an empty string.
//
// Parameters:
//   - semantic: the logical role of the attribute
//   - format: the in-buffer representation of the attribute
//   - opts: a variadic list of VertexAttributeBuilderOption functions
//
// Returns:
//   - VertexAttribute: the configured attribute
func NewVertexAttribute(semantic Semantic, format common.Format, opts ...VertexAttributeBuilderOption) VertexAttribute {
	a := VertexAttribute{
		Semantic: semantic,
		Format:   format,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Equal reports whether every field of a and other compares equal.
// The semantic name is compared by exact text.
//
// Parameters:
//   - other: the attribute to compare against
//
// Returns:
//   - bool: true if the attributes are structurally identical
func (a VertexAttribute) Equal(other VertexAttribute) bool {
	return a == other
}

// Size returns the byte width of the attribute's format. See ToStride.
func (a VertexAttribute) Size() uint32 {
	return ToStride(a.Format)
}

func (a VertexAttribute) String() string {
	return fmt.Sprintf("%s(%q) %s binding=%d location=%d offset=%d",
		a.Semantic, a.SemanticName, a.Format, a.Binding, a.Location, a.Offset)
}
