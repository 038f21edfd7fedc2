package loader

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

var (
	errNoDocument                = errors.New("no document loaded")
	errAccessorOutOfRange        = errors.New("accessor index out of range")
	errUnsupportedAccessorFormat = errors.New("unsupported accessor format")
	errUnsupportedPrimitiveMode  = errors.New("unsupported primitive mode")
	errNoVertexAttributes        = errors.New("primitive has no supported vertex attributes")
)

// gltfSemanticMap maps glTF attribute names to vertex semantics.
// JOINTS_n, WEIGHTS_n and COLOR_n above 0 have no semantic and are skipped.
var gltfSemanticMap = map[string]vertex_layout.Semantic{
	"POSITION":   vertex_layout.SemanticPosition,
	"NORMAL":     vertex_layout.SemanticNormal,
	"TANGENT":    vertex_layout.SemanticTangent,
	"COLOR_0":    vertex_layout.SemanticColor,
	"TEXCOORD_0": vertex_layout.SemanticTexCoord0,
	"TEXCOORD_1": vertex_layout.SemanticTexCoord1,
	"TEXCOORD_2": vertex_layout.SemanticTexCoord2,
	"TEXCOORD_3": vertex_layout.SemanticTexCoord3,
	"TEXCOORD_4": vertex_layout.SemanticTexCoord4,
	"TEXCOORD_5": vertex_layout.SemanticTexCoord5,
	"TEXCOORD_6": vertex_layout.SemanticTexCoord6,
	"TEXCOORD_7": vertex_layout.SemanticTexCoord7,
}

// gltfFormatKey identifies an accessor element format.
type gltfFormatKey struct {
	componentType int
	accessorType  string
	normalized    bool
}

// gltfFormatMap maps accessor element formats to vertex formats.
var gltfFormatMap = map[gltfFormatKey]common.Format{
	{gltfComponentTypeFloat, gltfAccessorTypeScalar, false}: common.FormatR32Float,
	{gltfComponentTypeFloat, gltfAccessorTypeVec2, false}:   common.FormatR32G32Float,
	{gltfComponentTypeFloat, gltfAccessorTypeVec3, false}:   common.FormatR32G32B32Float,
	{gltfComponentTypeFloat, gltfAccessorTypeVec4, false}:   common.FormatR32G32B32A32Float,

	{gltfComponentTypeUnsignedInt, gltfAccessorTypeScalar, false}: common.FormatR32Uint,
	{gltfComponentTypeUnsignedInt, gltfAccessorTypeVec2, false}:   common.FormatR32G32Uint,
	{gltfComponentTypeUnsignedInt, gltfAccessorTypeVec3, false}:   common.FormatR32G32B32Uint,
	{gltfComponentTypeUnsignedInt, gltfAccessorTypeVec4, false}:   common.FormatR32G32B32A32Uint,

	{gltfComponentTypeUnsignedByte, gltfAccessorTypeScalar, true}: common.FormatR8Unorm,
	{gltfComponentTypeUnsignedByte, gltfAccessorTypeVec2, true}:   common.FormatR8G8Unorm,
	{gltfComponentTypeUnsignedByte, gltfAccessorTypeVec3, true}:   common.FormatR8G8B8Unorm,
	{gltfComponentTypeUnsignedByte, gltfAccessorTypeVec4, true}:   common.FormatR8G8B8A8Unorm,

	{gltfComponentTypeUnsignedShort, gltfAccessorTypeScalar, true}: common.FormatR16Unorm,
	{gltfComponentTypeUnsignedShort, gltfAccessorTypeVec2, true}:   common.FormatR16G16Unorm,
	{gltfComponentTypeUnsignedShort, gltfAccessorTypeVec3, true}:   common.FormatR16G16B16Unorm,
	{gltfComponentTypeUnsignedShort, gltfAccessorTypeVec4, true}:   common.FormatR16G16B16A16Unorm,
}

// gltfTopologyMap maps glTF primitive modes to WebGPU topologies. LINE_LOOP and TRIANGLE_FAN have no equivalent.
var gltfTopologyMap = map[int]wgpu.PrimitiveTopology{
	gltfPrimitiveModePoints:        wgpu.PrimitiveTopologyPointList,
	gltfPrimitiveModeLines:         wgpu.PrimitiveTopologyLineList,
	gltfPrimitiveModeLineStrip:     wgpu.PrimitiveTopologyLineStrip,
	gltfPrimitiveModeTriangles:     wgpu.PrimitiveTopologyTriangleList,
	gltfPrimitiveModeTriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}

// gltfLayoutExtractorImpl is the implementation of the gltfLayoutExtractor interface.
type gltfLayoutExtractorImpl struct {
	parser      gltfParser
	interleaved bool
}

// gltfLayoutExtractor derives vertex layouts from the primitives of a parsed glTF document.
type gltfLayoutExtractor interface {
	// ExtractMesh extracts one MeshLayout per primitive of a single mesh.
	//
	// Parameters:
	//   - meshIndex: the index of the mesh to extract
	//
	// Returns:
	//   - []MeshLayout: one MeshLayout per primitive
	//   - error: error if any primitive cannot be described
	ExtractMesh(meshIndex int) ([]MeshLayout, error)

	// MeshCount returns the number of meshes in the parsed document.
	MeshCount() int
}

var _ gltfLayoutExtractor = &gltfLayoutExtractorImpl{}

// newGLTFLayoutExtractor creates a new layout extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//   - interleaved: true to pack every attribute into binding 0, false to give each attribute its own binding
//
// Returns:
//   - gltfLayoutExtractor: the layout extractor
func newGLTFLayoutExtractor(parser gltfParser, interleaved bool) gltfLayoutExtractor {
	return &gltfLayoutExtractorImpl{parser: parser, interleaved: interleaved}
}

func (e *gltfLayoutExtractorImpl) MeshCount() int {
	doc := e.parser.Document()
	if doc == nil {
		return 0
	}
	return len(doc.Meshes)
}

func (e *gltfLayoutExtractorImpl) ExtractMesh(meshIndex int) ([]MeshLayout, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, errNoDocument
	}
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", meshIndex)
	}

	mesh := &doc.Meshes[meshIndex]
	name := common.Coalesce(mesh.Name, fmt.Sprintf("mesh_%d", meshIndex))
	result := make([]MeshLayout, 0, len(mesh.Primitives))

	for primIdx := range mesh.Primitives {
		ml, err := e.extractPrimitive(doc, &mesh.Primitives[primIdx])
		if err != nil {
			return nil, fmt.Errorf("mesh %q primitive %d: %w", name, primIdx, err)
		}
		ml.MeshName = name
		ml.MeshIndex = meshIndex
		ml.PrimitiveIndex = primIdx
		result = append(result, ml)
	}

	return result, nil
}

// gltfAttributeRef pairs a mapped semantic with the accessor it reads.
type gltfAttributeRef struct {
	name     string
	semantic vertex_layout.Semantic
	format   common.Format
}

// extractPrimitive builds the layout of one primitive. Attributes are ordered by semantic so the
// same attribute set always produces the same layout, whatever the JSON key order was.
func (e *gltfLayoutExtractorImpl) extractPrimitive(doc *gltfDocument, prim *gltfPrimitive) (MeshLayout, error) {
	mode := gltfPrimitiveModeTriangles
	if prim.Mode != nil {
		mode = *prim.Mode
	}
	topology, ok := gltfTopologyMap[mode]
	if !ok {
		return MeshLayout{}, fmt.Errorf("%w: %d", errUnsupportedPrimitiveMode, mode)
	}

	refs := make([]gltfAttributeRef, 0, len(prim.Attributes))
	for name, accessorIndex := range prim.Attributes {
		semantic, ok := gltfSemanticMap[name]
		if !ok {
			common.Logger().Debug("skipping glTF attribute without semantic", zap.String("attribute", name))
			continue
		}
		format, err := accessorFormat(doc, accessorIndex)
		if err != nil {
			common.Logger().Debug("skipping glTF attribute", zap.String("attribute", name), zap.Error(err))
			continue
		}
		refs = append(refs, gltfAttributeRef{name: name, semantic: semantic, format: format})
	}
	if len(refs) == 0 {
		return MeshLayout{}, errNoVertexAttributes
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].semantic < refs[j].semantic
	})

	attrs := make([]vertex_layout.VertexAttribute, len(refs))
	var offset uint32
	for i, ref := range refs {
		opts := []vertex_layout.VertexAttributeBuilderOption{
			vertex_layout.WithSemanticName(ref.name),
			vertex_layout.WithLocation(uint32(i)),
		}
		if e.interleaved {
			opts = append(opts, vertex_layout.WithOffset(offset))
			offset += vertex_layout.FetchSize(ref.format)
		} else {
			opts = append(opts, vertex_layout.WithBinding(uint32(i)))
		}
		attrs[i] = vertex_layout.NewVertexAttribute(ref.semantic, ref.format, opts...)
	}

	layout, err := vertex_layout.NewVertexLayout(attrs...)
	if err != nil {
		return MeshLayout{}, err
	}
	return MeshLayout{Layout: layout, Topology: topology}, nil
}

// accessorFormat resolves the vertex format of an accessor.
func accessorFormat(doc *gltfDocument, accessorIndex int) (common.Format, error) {
	if accessorIndex < 0 || accessorIndex >= len(doc.Accessors) {
		return common.FormatUndefined, fmt.Errorf("%w: %d", errAccessorOutOfRange, accessorIndex)
	}
	acc := &doc.Accessors[accessorIndex]

	// FLOAT and UNSIGNED_INT data is never normalized.
	normalized := acc.Normalized
	if acc.ComponentType == gltfComponentTypeFloat || acc.ComponentType == gltfComponentTypeUnsignedInt {
		normalized = false
	}

	format, ok := gltfFormatMap[gltfFormatKey{acc.ComponentType, acc.Type, normalized}]
	if !ok {
		return common.FormatUndefined, fmt.Errorf("%w: componentType %d type %s normalized %t",
			errUnsupportedAccessorFormat, acc.ComponentType, acc.Type, acc.Normalized)
	}
	return format, nil
}
