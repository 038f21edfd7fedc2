// Package vertex_layout describes how the raw bytes of a vertex buffer are interpreted: an ordered list of
// attributes plus the total stride derived from their formats. A VertexLayout is immutable once built and is
// safe to share between goroutines without synchronization.
package vertex_layout

import (
	"errors"
	"fmt"
)

// MaxVertexAttributes is the exclusive upper bound on the number of attributes in a VertexLayout.
const MaxVertexAttributes = 16

// ErrAttributeCount is returned when a layout is built with zero attributes or with MaxVertexAttributes or more.
var ErrAttributeCount = errors.New("vertex_layout: attribute count out of range")

// VertexLayout is an ordered set of vertex attributes and the byte stride derived from them.
//
// The zero value is the empty layout: it has no attributes and a stride of 0. It is a valid placeholder
// meaning "no layout" but cannot be used to render.
type VertexLayout struct {
	attributes []VertexAttribute
	stride     uint32
}

// NewVertexLayout builds a VertexLayout from the given attributes, in order.
// The attributes are copied; later changes to the caller's slice do not affect the layout.
// No overlap, offset or binding checks are made beyond the attribute count.
//
// Parameters:
//   - attributes: between 1 and MaxVertexAttributes-1 attribute descriptors
//
// Returns:
//   - VertexLayout: the constructed layout
//   - error: an error wrapping ErrAttributeCount if the count is out of range
func NewVertexLayout(attributes ...VertexAttribute) (VertexLayout, error) {
	if len(attributes) == 0 || len(attributes) >= MaxVertexAttributes {
		return VertexLayout{}, fmt.Errorf("%w: got %d, want 1 to %d", ErrAttributeCount, len(attributes), MaxVertexAttributes-1)
	}

	l := VertexLayout{
		attributes: make([]VertexAttribute, len(attributes)),
	}
	for i, a := range attributes {
		l.attributes[i] = a
		l.stride += ToStride(a.Format)
	}
	return l, nil
}

// MustNewVertexLayout is like NewVertexLayout but panics if the attribute count is out of range.
// It is meant for layouts authored in code, where a bad count is a programming error.
//
// Parameters:
//   - attributes: between 1 and MaxVertexAttributes-1 attribute descriptors
//
// Returns:
//   - VertexLayout: the constructed layout
func MustNewVertexLayout(attributes ...VertexAttribute) VertexLayout {
	l, err := NewVertexLayout(attributes...)
	if err != nil {
		panic(err.Error())
	}
	return l
}

// Attribute returns the attribute at index. It panics if index is not in [0, AttributeCount()).
//
// Parameters:
//   - index: the attribute index in declaration order
//
// Returns:
//   - VertexAttribute: a copy of the attribute
func (l VertexLayout) Attribute(index int) VertexAttribute {
	if index < 0 || index >= len(l.attributes) {
		panic(fmt.Sprintf("vertex_layout: attribute index %d out of range [0, %d)", index, len(l.attributes)))
	}
	return l.attributes[index]
}

// AttributeCount returns the number of attributes in the layout.
func (l VertexLayout) AttributeCount() int {
	return len(l.attributes)
}

// Stride returns the total byte size of one vertex record, the sum of every attribute's format width.
func (l VertexLayout) Stride() uint32 {
	return l.stride
}

// Attributes returns a copy of the attributes in declaration order.
//
// Returns:
//   - []VertexAttribute: a new slice the caller may modify freely, nil for the empty layout
func (l VertexLayout) Attributes() []VertexAttribute {
	if len(l.attributes) == 0 {
		return nil
	}
	out := make([]VertexAttribute, len(l.attributes))
	copy(out, l.attributes)
	return out
}

// IsEmpty reports whether the layout has no attributes.
func (l VertexLayout) IsEmpty() bool {
	return len(l.attributes) == 0
}

// Equal reports whether l and other have the same number of attributes and the attributes compare equal
// pairwise, in order. The comparison is structural: attributes that differ only in SemanticName are not equal.
// The stride is not compared since it is derived from the attributes.
//
// Parameters:
//   - other: the layout to compare against
//
// Returns:
//   - bool: true if both layouts describe the same attributes in the same order
func (l VertexLayout) Equal(other VertexLayout) bool {
	if len(l.attributes) != len(other.attributes) {
		return false
	}
	for i := range l.attributes {
		if l.attributes[i] != other.attributes[i] {
			return false
		}
	}
	return true
}

func (l VertexLayout) String() string {
	return fmt.Sprintf("VertexLayout{attributes: %d, stride: %d}", len(l.attributes), l.stride)
}
