package vertex_layout

import "testing"

func TestToString(t *testing.T) {
	tests := []struct {
		semantic Semantic
		want     string
	}{
		{SemanticPosition, "POSITION"},
		{SemanticNormal, "NORMAL"},
		{SemanticColor, "COLOR"},
		{SemanticTangent, "TANGENT"},
		{SemanticBitangent, "BITANGENT"},
		{SemanticTexCoord0, "TEXCOORD0"},
		{SemanticTexCoord3, "TEXCOORD3"},
		{SemanticTexCoord7, "TEXCOORD7"},
		{semanticCount, ""},
		{Semantic(-1), ""},
		{Semantic(200), ""},
	}
	for _, tt := range tests {
		if got := ToString(tt.semantic); got != tt.want {
			t.Errorf("ToString(%d) = %q, want %q", int(tt.semantic), got, tt.want)
		}
		if got := tt.semantic.String(); got != tt.want {
			t.Errorf("Semantic(%d).String() = %q, want %q", int(tt.semantic), got, tt.want)
		}
	}
}

func TestSemanticFromString(t *testing.T) {
	for s := SemanticPosition; s < semanticCount; s++ {
		got, ok := SemanticFromString(ToString(s))
		if !ok || got != s {
			t.Errorf("SemanticFromString(%q) = %v, %v, want %v", ToString(s), got, ok, s)
		}
	}
	if got, ok := SemanticFromString("texcoord2"); !ok || got != SemanticTexCoord2 {
		t.Errorf("SemanticFromString is not case-insensitive: %v, %v", got, ok)
	}
	for _, name := range []string{"", "TEXCOORD8", "BINORMAL", "POSITION0"} {
		if _, ok := SemanticFromString(name); ok {
			t.Errorf("SemanticFromString(%q) should fail", name)
		}
	}
}

func TestTexCoord(t *testing.T) {
	if MaxTexCoords != 8 {
		t.Fatalf("MaxTexCoords = %d, want 8", MaxTexCoords)
	}
	for set := 0; set < MaxTexCoords; set++ {
		s, ok := TexCoord(set)
		if !ok || s != SemanticTexCoord0+Semantic(set) {
			t.Errorf("TexCoord(%d) = %v, %v", set, s, ok)
		}
	}
	if _, ok := TexCoord(MaxTexCoords); ok {
		t.Error("TexCoord(MaxTexCoords) should fail")
	}
	if _, ok := TexCoord(-1); ok {
		t.Error("TexCoord(-1) should fail")
	}
}
