package shader

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"go.uber.org/zap"
)

// wgslVertexFormatMap maps WGSL type names to the vertex attribute format with the same representation.
// Signed integer vectors have no equivalent Format, so structs using them are not reflected.
var wgslVertexFormatMap = map[string]common.Format{
	"f32":       common.FormatR32Float,
	"vec2f":     common.FormatR32G32Float,
	"vec2<f32>": common.FormatR32G32Float,
	"vec3f":     common.FormatR32G32B32Float,
	"vec3<f32>": common.FormatR32G32B32Float,
	"vec4f":     common.FormatR32G32B32A32Float,
	"vec4<f32>": common.FormatR32G32B32A32Float,
	"u32":       common.FormatR32Uint,
	"vec2u":     common.FormatR32G32Uint,
	"vec2<u32>": common.FormatR32G32Uint,
	"vec3u":     common.FormatR32G32B32Uint,
	"vec3<u32>": common.FormatR32G32B32Uint,
	"vec4u":     common.FormatR32G32B32A32Uint,
	"vec4<u32>": common.FormatR32G32B32A32Uint,
	"f16":       common.FormatR16Float,
	"vec2<f16>": common.FormatR16G16Float,
	"vec2h":     common.FormatR16G16Float,
	"vec3<f16>": common.FormatR16G16B16Float,
	"vec3h":     common.FormatR16G16B16Float,
	"vec4<f16>": common.FormatR16G16B16A16Float,
	"vec4h":     common.FormatR16G16B16A16Float,
}

// wgslSemanticNames maps lower-case vertex input field names (with any trailing set digits removed)
// to the semantic they carry.
var wgslSemanticNames = map[string]vertex_layout.Semantic{
	"position":  vertex_layout.SemanticPosition,
	"pos":       vertex_layout.SemanticPosition,
	"normal":    vertex_layout.SemanticNormal,
	"norm":      vertex_layout.SemanticNormal,
	"color":     vertex_layout.SemanticColor,
	"colour":    vertex_layout.SemanticColor,
	"col":       vertex_layout.SemanticColor,
	"tangent":   vertex_layout.SemanticTangent,
	"bitangent": vertex_layout.SemanticBitangent,
	"binormal":  vertex_layout.SemanticBitangent,
}

// wgslTexCoordNames are the lower-case field name stems that denote a texture coordinate set.
var wgslTexCoordNames = map[string]bool{
	"uv":        true,
	"texcoord":  true,
	"tex_coord": true,
	"texcoords": true,
}

// wgslFieldPrefixes are conventional input prefixes stripped before semantic matching.
var wgslFieldPrefixes = []string{"in_", "a_", "v_", "vertex_", "i_"}

var (
	// structBlockRegex matches struct declarations and captures the name and body
	structBlockRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	// locationRegex matches @location(N) attributes
	locationRegex = regexp.MustCompile(`@location\((\d+)\)`)

	// builtinRegex matches @builtin(...) attributes
	builtinRegex = regexp.MustCompile(`@builtin\(\w+\)`)

	// fieldRegex matches a struct field line: optional attributes, name, colon, type.
	// The type capture (.+) is greedy to handle parameterized types like array<T, N>.
	fieldRegex = regexp.MustCompile(`(?:(?:@\w+\([^)]*\)\s*)*)*\s*(\w+)\s*:\s*(.+)`)

	// trailingDigitsRegex splits a field name into its stem and trailing set index
	trailingDigitsRegex = regexp.MustCompile(`^(.*?)_?(\d+)$`)

	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)

	// computeEntryRegex matches @compute functions and captures the entry point name
	computeEntryRegex = regexp.MustCompile(`(?s)@compute\b.*?\bfn\s+(\w+)`)
)

// parseVertexLayouts extracts vertex layouts from WGSL source code.
// Every struct that is a pure vertex input (has @location attributes but no @builtin fields)
// becomes one VertexLayout whose attributes read from binding N, where N is the struct's index
// among the vertex input structs in source order. Structs containing unrecognized WGSL types are
// skipped but still occupy their binding, so the bindings of later structs do not shift.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - []vertex_layout.VertexLayout: vertex layouts in source order
func parseVertexLayouts(source string) []vertex_layout.VertexLayout {
	var result []vertex_layout.VertexLayout
	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)

	var binding uint32
	for _, ps := range structs {
		if !isVertexInputStruct(ps) {
			continue
		}
		layout, err := buildVertexLayout(ps, binding)
		binding++
		if err != nil {
			common.Logger().Debug("skipping vertex input struct",
				zap.String("struct", ps.name),
				zap.Error(err))
			continue
		}
		result = append(result, layout)
	}

	return result
}

// parseEntryPoint extracts the entry point function name for the given shader type
// from WGSL source. Returns an empty string if no matching entry point annotation is found.
//
// Parameters:
//   - source: the raw WGSL source code string
//   - shaderType: the shader type to search for (ShaderTypeVertex, ShaderTypeFragment, or ShaderTypeCompute)
//
// Returns:
//   - string: the entry point function name, or empty string if not found
func parseEntryPoint(source string, shaderType ShaderType) string {
	cleaned := stripComments(source)

	var re *regexp.Regexp
	switch shaderType {
	case ShaderTypeVertex:
		re = vertexEntryRegex
	case ShaderTypeFragment:
		re = fragmentEntryRegex
	case ShaderTypeCompute:
		re = computeEntryRegex
	default:
		return ""
	}

	if match := re.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return ""
}

// parseStructBlocks finds all struct { ... } blocks in the cleaned WGSL source
// and parses their fields including @location and @builtin attributes
//
// Parameters:
//   - source: WGSL source with comments already stripped
//
// Returns:
//   - []parsedStruct: all struct blocks found in the source
func parseStructBlocks(source string) []parsedStruct {
	matches := structBlockRegex.FindAllStringSubmatch(source, -1)
	structs := make([]parsedStruct, 0, len(matches))

	for _, match := range matches {
		structs = append(structs, parsedStruct{
			name:   match[1],
			fields: parseStructFields(match[2]),
		})
	}

	return structs
}

// parseStructFields parses the body of a struct block into individual fields,
// extracting @location and @builtin attributes along with the field name and type
//
// Parameters:
//   - body: the content between { and } of a struct declaration
//
// Returns:
//   - []parsedField: all fields found in the struct body
func parseStructFields(body string) []parsedField {
	lines := splitAtTopLevelCommas(body)
	fields := make([]parsedField, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		field := parsedField{location: -1}
		if builtinRegex.MatchString(line) {
			field.isBuiltin = true
		}
		if locMatch := locationRegex.FindStringSubmatch(line); locMatch != nil {
			if loc, err := strconv.Atoi(locMatch[1]); err == nil {
				field.location = loc
			}
		}

		fm := fieldRegex.FindStringSubmatch(line)
		if fm == nil {
			continue
		}
		field.name = fm[1]
		field.typeName = strings.TrimSpace(fm[2])

		fields = append(fields, field)
	}

	return fields
}

// inferSemantic derives an attribute semantic from a vertex input field name.
// Names like "position", "a_normal", "uv1" or "texCoord_2" are recognized. Unrecognized
// names are reported with ok=false so the caller can assign a generic texture coordinate slot.
//
// Parameters:
//   - name: the WGSL field name
//
// Returns:
//   - vertex_layout.Semantic: the inferred semantic
//   - bool: false if the name carries no recognizable semantic
func inferSemantic(name string) (vertex_layout.Semantic, bool) {
	n := strings.ToLower(name)
	for _, prefix := range wgslFieldPrefixes {
		if trimmed, ok := strings.CutPrefix(n, prefix); ok && trimmed != "" {
			n = trimmed
			break
		}
	}

	set := 0
	if m := trailingDigitsRegex.FindStringSubmatch(n); m != nil && m[1] != "" {
		n = m[1]
		set, _ = strconv.Atoi(m[2])
	}

	if wgslTexCoordNames[n] {
		return vertex_layout.TexCoord(set)
	}
	if s, ok := wgslSemanticNames[n]; ok {
		return s, true
	}
	return 0, false
}
