package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/Carmen-Shannon/oxy-layout/engine/renderer/vertex_layout"
)

const staticMeshWGSL = `
// Static mesh vertex input.
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3f,
    @location(2) uv: vec2<f32>,   // first UV set
    @location(3) color: vec4f,
    @location(4) tangent: vec4<f32>,
};

/* per-instance data, /* nested */ still a comment */
struct InstanceInput {
    @location(5) model_row: vec4f,
    @location(6) tint_col: vec4h,
    @location(7) uv_1: vec2f,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

struct CameraUniform {
    view_proj: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(in: VertexInput, inst: InstanceInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = camera.view_proj * vec4<f32>(in.position, 1.0);
    out.uv = in.uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.uv, 0.0, 1.0);
}
`

func TestParseVertexLayouts(t *testing.T) {
	layouts := parseVertexLayouts(staticMeshWGSL)
	if len(layouts) != 2 {
		t.Fatalf("len(layouts) = %d, want 2", len(layouts))
	}

	want := vertex_layout.MustNewVertexLayout(
		vertex_layout.NewVertexAttribute(vertex_layout.SemanticPosition, common.FormatR32G32B32Float,
			vertex_layout.WithSemanticName("position"), vertex_layout.WithLocation(0), vertex_layout.WithOffset(0)),
		vertex_layout.NewVertexAttribute(vertex_layout.SemanticNormal, common.FormatR32G32B32Float,
			vertex_layout.WithSemanticName("normal"), vertex_layout.WithLocation(1), vertex_layout.WithOffset(12)),
		vertex_layout.NewVertexAttribute(vertex_layout.SemanticTexCoord0, common.FormatR32G32Float,
			vertex_layout.WithSemanticName("uv"), vertex_layout.WithLocation(2), vertex_layout.WithOffset(24)),
		vertex_layout.NewVertexAttribute(vertex_layout.SemanticColor, common.FormatR32G32B32A32Float,
			vertex_layout.WithSemanticName("color"), vertex_layout.WithLocation(3), vertex_layout.WithOffset(32)),
		vertex_layout.NewVertexAttribute(vertex_layout.SemanticTangent, common.FormatR32G32B32A32Float,
			vertex_layout.WithSemanticName("tangent"), vertex_layout.WithLocation(4), vertex_layout.WithOffset(48)),
	)
	if !layouts[0].Equal(want) {
		t.Errorf("VertexInput layout mismatch:\nhave %v\nwant %v", layouts[0].Attributes(), want.Attributes())
	}
	if layouts[0].Stride() != 64 {
		t.Errorf("VertexInput stride = %d, want 64", layouts[0].Stride())
	}

	inst := layouts[1]
	if inst.AttributeCount() != 3 {
		t.Fatalf("InstanceInput attribute count = %d, want 3", inst.AttributeCount())
	}
	// uv_1 claims TEXCOORD1; the two unnamed fields take the free sets in field order.
	wantSemantics := []vertex_layout.Semantic{
		vertex_layout.SemanticTexCoord0,
		vertex_layout.SemanticTexCoord2,
		vertex_layout.SemanticTexCoord1,
	}
	for i, s := range wantSemantics {
		a := inst.Attribute(i)
		if a.Semantic != s {
			t.Errorf("InstanceInput attribute %d semantic = %s, want %s", i, a.Semantic, s)
		}
		if a.Binding != 1 {
			t.Errorf("InstanceInput attribute %d binding = %d, want 1", i, a.Binding)
		}
	}
	if got := inst.Attribute(1).Format; got != common.FormatR16G16B16A16Float {
		t.Errorf("tint_col format = %s, want R16G16B16A16_FLOAT", got)
	}
	if inst.Stride() != 16+8+8 {
		t.Errorf("InstanceInput stride = %d, want 32", inst.Stride())
	}
}

func TestParseVertexLayoutsSkipsUnknownTypes(t *testing.T) {
	src := `
struct SignedInput {
    @location(0) position: vec3f,
    @location(1) joints: vec4<i32>,
};
struct PlainInput {
    @location(0) position: vec3f,
};
`
	layouts := parseVertexLayouts(src)
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}
	// SignedInput is skipped but keeps binding 0, so PlainInput stays on binding 1.
	if b := layouts[0].Attribute(0).Binding; b != 1 {
		t.Errorf("binding = %d, want 1", b)
	}
}

func TestInferSemantic(t *testing.T) {
	tests := []struct {
		name string
		want vertex_layout.Semantic
		ok   bool
	}{
		{"position", vertex_layout.SemanticPosition, true},
		{"a_Position", vertex_layout.SemanticPosition, true},
		{"in_normal", vertex_layout.SemanticNormal, true},
		{"colour", vertex_layout.SemanticColor, true},
		{"color0", vertex_layout.SemanticColor, true},
		{"binormal", vertex_layout.SemanticBitangent, true},
		{"tangent", vertex_layout.SemanticTangent, true},
		{"uv", vertex_layout.SemanticTexCoord0, true},
		{"texCoord3", vertex_layout.SemanticTexCoord3, true},
		{"tex_coord_7", vertex_layout.SemanticTexCoord7, true},
		{"uv8", 0, false},
		{"bone_weights", 0, false},
	}
	for _, tt := range tests {
		got, ok := inferSemantic(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("inferSemantic(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseEntryPoint(t *testing.T) {
	if got := parseEntryPoint(staticMeshWGSL, ShaderTypeVertex); got != "vs_main" {
		t.Errorf("vertex entry point = %q, want vs_main", got)
	}
	if got := parseEntryPoint(staticMeshWGSL, ShaderTypeFragment); got != "fs_main" {
		t.Errorf("fragment entry point = %q, want fs_main", got)
	}
	if got := parseEntryPoint(staticMeshWGSL, ShaderTypeCompute); got != "" {
		t.Errorf("compute entry point = %q, want empty", got)
	}
}

func TestNewShader(t *testing.T) {
	vs := NewShader("static_mesh", ShaderTypeVertex, staticMeshWGSL)
	if vs.Key() != "static_mesh" || vs.ShaderType() != ShaderTypeVertex {
		t.Errorf("unexpected shader identity: %q %v", vs.Key(), vs.ShaderType())
	}
	if vs.Module() == nil || vs.Module().WGSLDescriptor == nil || vs.Module().WGSLDescriptor.Code != staticMeshWGSL {
		t.Error("module descriptor does not carry the WGSL source")
	}
	if len(vs.VertexLayouts()) != 2 {
		t.Errorf("len(VertexLayouts()) = %d, want 2", len(vs.VertexLayouts()))
	}
	if !vs.VertexLayout(5).IsEmpty() {
		t.Error("out-of-range VertexLayout should be empty")
	}

	fs := NewShader("static_mesh_fs", ShaderTypeFragment, staticMeshWGSL)
	if fs.VertexLayouts() != nil {
		t.Error("fragment shaders should not reflect vertex layouts")
	}
}

func TestNewShaderFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.wgsl")
	if err := os.WriteFile(path, []byte(staticMeshWGSL), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := NewShaderFromPath("mesh", ShaderTypeVertex, path)
	if err != nil {
		t.Fatalf("NewShaderFromPath: %v", err)
	}
	if s.EntryPoint() != "vs_main" {
		t.Errorf("EntryPoint() = %q, want vs_main", s.EntryPoint())
	}

	if _, err := NewShaderFromPath("missing", ShaderTypeVertex, filepath.Join(t.TempDir(), "nope.wgsl")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
