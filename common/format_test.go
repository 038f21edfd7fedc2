package common

import "testing"

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatUndefined, "UNDEFINED"},
		{FormatR8Unorm, "R8_UNORM"},
		{FormatR32G32B32Float, "R32G32B32_FLOAT"},
		{FormatB8G8R8A8Unorm, "B8G8R8A8_UNORM"},
		{FormatX8D24UnormPack32, "X8_D24_UNORM_PACK32"},
		{FormatD32FloatS8Uint, "D32_FLOAT_S8_UINT"},
		{Format(-1), ""},
		{formatCount, ""},
		{Format(1000), ""},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func TestFormatNamesExhaustive(t *testing.T) {
	seen := make(map[string]Format)
	for _, f := range Formats() {
		name := f.String()
		if name == "" {
			t.Fatalf("Format(%d) has no name", int(f))
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("Format(%d) and Format(%d) share name %q", int(prev), int(f), name)
		}
		seen[name] = f
	}
	if len(seen) != int(formatCount) {
		t.Fatalf("Formats() returned %d values, want %d", len(seen), int(formatCount))
	}
}

func TestFormatIsDepthStencil(t *testing.T) {
	depth := map[Format]bool{
		FormatD16Unorm:         true,
		FormatX8D24UnormPack32: true,
		FormatD32Float:         true,
		FormatS8Uint:           true,
		FormatD16UnormS8Uint:   true,
		FormatD24UnormS8Uint:   true,
		FormatD32FloatS8Uint:   true,
	}
	for _, f := range Formats() {
		if got := f.IsDepthStencil(); got != depth[f] {
			t.Errorf("%s.IsDepthStencil() = %v, want %v", f, got, depth[f])
		}
	}
	if Format(1000).IsDepthStencil() {
		t.Error("out-of-range format reported as depth/stencil")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "mesh_0"); got != "mesh_0" {
		t.Errorf("Coalesce = %q, want mesh_0", got)
	}
	if got := Coalesce("body", "mesh_0"); got != "body" {
		t.Errorf("Coalesce = %q, want body", got)
	}
	if got := Coalesce[int](); got != 0 {
		t.Errorf("Coalesce() = %d, want 0", got)
	}
}
