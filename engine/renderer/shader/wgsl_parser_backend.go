package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
)

var (
	errUnknownVertexType = errors.New("unsupported vertex input type")
	errMissingLocation   = errors.New("vertex input field has no @location")
	errNoFreeTexCoord    = errors.New("no free texture coordinate slot for unnamed attribute")
)

// stripComments removes both block and line comments from WGSL source.
//
// Parameters:
//   - source: raw WGSL source string
//
// Returns:
//   - string: source with all comments removed
func stripComments(source string) string {
	return stripLineComments(stripBlockComments(source))
}

// stripLineComments removes single-line // comments from WGSL source so they
// do not interfere with struct and field parsing
//
// Parameters:
//   - source: raw WGSL source string
//
// Returns:
//   - string: source with line comments removed
func stripLineComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))
	for line := range strings.SplitSeq(source, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// stripBlockComments removes block comments (/* ... */) from WGSL source,
// handling nested block comments as WGSL allows
//
// Parameters:
//   - source: raw WGSL source string
//
// Returns:
//   - string: source with block comments removed
func stripBlockComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))
	depth := 0
	for i := 0; i < len(source); {
		if i+1 < len(source) {
			if source[i] == '/' && source[i+1] == '*' {
				depth++
				i += 2
				continue
			}
			if source[i] == '*' && source[i+1] == '/' {
				if depth > 0 {
					depth--
				}
				i += 2
				continue
			}
		}
		if depth == 0 {
			sb.WriteByte(source[i])
		}
		i++
	}
	return sb.String()
}

// isVertexInputStruct returns true if the struct is a pure vertex input, meaning
// it has at least one @location field and zero @builtin fields. This distinguishes
// vertex input structs from vertex output structs which mix @location with @builtin(position).
//
// Parameters:
//   - ps: the parsed struct to check
//
// Returns:
//   - bool: true if this is a vertex input struct
func isVertexInputStruct(ps parsedStruct) bool {
	hasLocation := false
	for _, f := range ps.fields {
		if f.isBuiltin {
			return false
		}
		if f.location >= 0 {
			hasLocation = true
		}
	}
	return hasLocation
}

// buildVertexLayout converts a parsed vertex input struct into a VertexLayout reading from a single binding.
// Each field's WGSL type is mapped through wgslVertexFormatMap, offsets are packed sequentially in field
// order and the field name becomes the attribute's semantic name. Fields whose name carries no known
// semantic take the lowest texture coordinate set not already claimed by another field.
//
// Parameters:
//   - ps: the parsed struct containing vertex input fields
//   - binding: the vertex buffer binding the struct is read from
//
// Returns:
//   - vertex_layout.VertexLayout: the constructed layout
//   - error: an error if a field cannot be mapped or the attribute count is out of range
func buildVertexLayout(ps parsedStruct, binding uint32) (vertex_layout.VertexLayout, error) {
	semantics := make([]vertex_layout.Semantic, len(ps.fields))
	known := make([]bool, len(ps.fields))
	claimed := make(map[vertex_layout.Semantic]bool)
	for i, f := range ps.fields {
		if s, ok := inferSemantic(f.name); ok {
			semantics[i], known[i] = s, true
			claimed[s] = true
		}
	}

	nextSet := 0
	for i := range ps.fields {
		if known[i] {
			continue
		}
		for ; nextSet < vertex_layout.MaxTexCoords; nextSet++ {
			s, _ := vertex_layout.TexCoord(nextSet)
			if !claimed[s] {
				break
			}
		}
		s, ok := vertex_layout.TexCoord(nextSet)
		if !ok {
			return vertex_layout.VertexLayout{}, fmt.Errorf("field %q: %w", ps.fields[i].name, errNoFreeTexCoord)
		}
		semantics[i] = s
		claimed[s] = true
	}

	attrs := make([]vertex_layout.VertexAttribute, 0, len(ps.fields))
	var offset uint32
	for i, f := range ps.fields {
		if f.location < 0 {
			return vertex_layout.VertexLayout{}, fmt.Errorf("field %q: %w", f.name, errMissingLocation)
		}
		format, ok := wgslVertexFormatMap[f.typeName]
		if !ok {
			return vertex_layout.VertexLayout{}, fmt.Errorf("field %q: %w: %s", f.name, errUnknownVertexType, f.typeName)
		}

		attrs = append(attrs, vertex_layout.NewVertexAttribute(semantics[i], format,
			vertex_layout.WithSemanticName(f.name),
			vertex_layout.WithBinding(binding),
			vertex_layout.WithLocation(uint32(f.location)),
			vertex_layout.WithOffset(offset),
		))
		offset += vertex_layout.FetchSize(format)
	}

	return vertex_layout.NewVertexLayout(attrs...)
}

// splitAtTopLevelCommas splits a string at commas that are not nested inside angle brackets.
// This correctly handles WGSL types like array<FrustumPlane, 6> where the comma is part of
// the type syntax rather than a field separator.
//
// Parameters:
//   - s: the string to split (typically the body of a WGSL struct)
//
// Returns:
//   - []string: substrings between top-level commas
func splitAtTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
