package vertex_layout

import "strings"

// Semantic identifies the logical role of a vertex attribute, independent of its storage format.
type Semantic int

const (
	// SemanticPosition is the vertex position, usually in model space.
	SemanticPosition Semantic = iota

	// SemanticNormal is the surface normal used for lighting.
	SemanticNormal

	// SemanticColor is the per-vertex color.
	SemanticColor

	// SemanticTangent is the tangent vector used for normal mapping.
	SemanticTangent

	// SemanticBitangent is the bitangent (binormal) vector used for normal mapping.
	SemanticBitangent

	SemanticTexCoord0
	SemanticTexCoord1
	SemanticTexCoord2
	SemanticTexCoord3
	SemanticTexCoord4
	SemanticTexCoord5
	SemanticTexCoord6
	SemanticTexCoord7

	// semanticCount is one past the last defined Semantic.
	semanticCount
)

// MaxTexCoords is the number of indexed texture coordinate semantics.
const MaxTexCoords = int(SemanticTexCoord7-SemanticTexCoord0) + 1

var semanticNames = [semanticCount]string{
	SemanticPosition:  "POSITION",
	SemanticNormal:    "NORMAL",
	SemanticColor:     "COLOR",
	SemanticTangent:   "TANGENT",
	SemanticBitangent: "BITANGENT",
	SemanticTexCoord0: "TEXCOORD0",
	SemanticTexCoord1: "TEXCOORD1",
	SemanticTexCoord2: "TEXCOORD2",
	SemanticTexCoord3: "TEXCOORD3",
	SemanticTexCoord4: "TEXCOORD4",
	SemanticTexCoord5: "TEXCOORD5",
	SemanticTexCoord6: "TEXCOORD6",
	SemanticTexCoord7: "TEXCOORD7",
}

// ToString maps a Semantic to its fixed upper-case name, e.g. SemanticPosition -> "POSITION".
// Values outside the defined set map to an empty string.
//
// Parameters:
//   - semantic: the semantic to name
//
// Returns:
//   - string: the semantic name, or "" if the semantic is undefined
func ToString(semantic Semantic) string {
	if semantic < SemanticPosition || semantic >= semanticCount {
		return ""
	}
	return semanticNames[semantic]
}

// String implements fmt.Stringer using ToString.
func (s Semantic) String() string {
	return ToString(s)
}

// Valid reports whether s is one of the defined semantics.
func (s Semantic) Valid() bool {
	return s >= SemanticPosition && s < semanticCount
}

// TexCoord returns the texture coordinate semantic for the given set index.
//
// Parameters:
//   - set: the texture coordinate set, 0 through MaxTexCoords-1
//
// Returns:
//   - Semantic: the TEXCOORDn semantic
//   - bool: false if set is out of range
func TexCoord(set int) (Semantic, bool) {
	if set < 0 || set >= MaxTexCoords {
		return 0, false
	}
	return SemanticTexCoord0 + Semantic(set), true
}

// SemanticFromString parses a semantic name as produced by ToString. Matching is case-insensitive.
//
// Parameters:
//   - name: the semantic name, e.g. "TEXCOORD3"
//
// Returns:
//   - Semantic: the parsed semantic
//   - bool: false if name does not match any semantic
func SemanticFromString(name string) (Semantic, bool) {
	for s, n := range semanticNames {
		if strings.EqualFold(n, name) {
			return Semantic(s), true
		}
	}
	return 0, false
}
