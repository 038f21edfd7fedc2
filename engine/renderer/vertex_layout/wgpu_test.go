package vertex_layout

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-layout/common"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestToVertexFormat(t *testing.T) {
	tests := []struct {
		format common.Format
		want   wgpu.VertexFormat
		ok     bool
	}{
		{common.FormatR32Float, wgpu.VertexFormatFloat32, true},
		{common.FormatR32G32Float, wgpu.VertexFormatFloat32x2, true},
		{common.FormatR32G32B32Float, wgpu.VertexFormatFloat32x3, true},
		{common.FormatR32G32B32A32Float, wgpu.VertexFormatFloat32x4, true},
		{common.FormatR8G8B8A8Unorm, wgpu.VertexFormatUnorm8x4, true},
		{common.FormatR16G16Float, wgpu.VertexFormatFloat16x2, true},
		{common.FormatR32G32B32A32Uint, wgpu.VertexFormatUint32x4, true},
		{common.FormatR8G8B8Unorm, 0, false},
		{common.FormatB8G8R8A8Unorm, 0, false},
		{common.FormatD32Float, 0, false},
		{common.FormatUndefined, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToVertexFormat(tt.format)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ToVertexFormat(%s) = %v, %v, want %v, %v", tt.format, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBufferLayoutsInterleaved(t *testing.T) {
	l := MustNewVertexLayout(staticMeshAttributes()...)
	bufs, err := l.BufferLayouts(wgpu.VertexStepModeVertex)
	if err != nil {
		t.Fatalf("BufferLayouts: %v", err)
	}
	if len(bufs) != 1 {
		t.Fatalf("len(BufferLayouts) = %d, want 1", len(bufs))
	}
	buf := bufs[0]
	if buf.ArrayStride != uint64(l.Stride()) {
		t.Errorf("ArrayStride = %d, want %d", buf.ArrayStride, l.Stride())
	}
	if buf.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want vertex", buf.StepMode)
	}
	if len(buf.Attributes) != l.AttributeCount() {
		t.Fatalf("len(Attributes) = %d, want %d", len(buf.Attributes), l.AttributeCount())
	}
	for i, attr := range buf.Attributes {
		src := l.Attribute(i)
		if attr.ShaderLocation != src.Location || attr.Offset != uint64(src.Offset) {
			t.Errorf("attribute %d = %+v, want location %d offset %d", i, attr, src.Location, src.Offset)
		}
	}
}

func TestBufferLayoutsPerBinding(t *testing.T) {
	l := MustNewVertexLayout(
		NewVertexAttribute(SemanticTexCoord0, common.FormatR32G32Float, WithBinding(2), WithLocation(2)),
		NewVertexAttribute(SemanticPosition, common.FormatR32G32B32Float, WithBinding(0), WithLocation(0)),
		NewVertexAttribute(SemanticNormal, common.FormatR32G32B32Float, WithBinding(0), WithLocation(1), WithOffset(12)),
	)
	bufs, err := l.BufferLayouts(wgpu.VertexStepModeInstance)
	if err != nil {
		t.Fatalf("BufferLayouts: %v", err)
	}
	if len(bufs) != 3 {
		t.Fatalf("len(BufferLayouts) = %d, want 3", len(bufs))
	}
	if bufs[0].ArrayStride != 24 || len(bufs[0].Attributes) != 2 {
		t.Errorf("slot 0 = stride %d, %d attributes; want 24, 2", bufs[0].ArrayStride, len(bufs[0].Attributes))
	}
	if bufs[0].StepMode != wgpu.VertexStepModeInstance {
		t.Errorf("slot 0 StepMode = %v, want instance", bufs[0].StepMode)
	}

	// Slot 1 is read by no attribute and must stay a placeholder so binding 2 keeps its slot.
	if bufs[1].StepMode != wgpu.VertexStepModeVertexBufferNotUsed || bufs[1].ArrayStride != 0 || len(bufs[1].Attributes) != 0 {
		t.Errorf("slot 1 = %+v, want an unused placeholder", bufs[1])
	}

	if bufs[2].ArrayStride != 8 || len(bufs[2].Attributes) != 1 {
		t.Fatalf("slot 2 = stride %d, %d attributes; want 8, 1", bufs[2].ArrayStride, len(bufs[2].Attributes))
	}
	if bufs[2].Attributes[0].ShaderLocation != 2 {
		t.Errorf("slot 2 location = %d, want 2", bufs[2].Attributes[0].ShaderLocation)
	}
	if bufs[2].StepMode != wgpu.VertexStepModeInstance {
		t.Errorf("slot 2 StepMode = %v, want instance", bufs[2].StepMode)
	}
}

func TestBufferLayoutsSingleHighBinding(t *testing.T) {
	l := MustNewVertexLayout(NewVertexAttribute(SemanticPosition, common.FormatR32G32B32Float, WithBinding(1)))
	bufs, err := l.BufferLayouts(wgpu.VertexStepModeVertex)
	if err != nil {
		t.Fatalf("BufferLayouts: %v", err)
	}
	if len(bufs) != 2 {
		t.Fatalf("len(BufferLayouts) = %d, want 2", len(bufs))
	}
	if bufs[0].StepMode != wgpu.VertexStepModeVertexBufferNotUsed {
		t.Errorf("slot 0 StepMode = %v, want unused", bufs[0].StepMode)
	}
	if bufs[1].ArrayStride != 12 || bufs[1].StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("slot 1 = %+v, want stride 12, vertex step mode", bufs[1])
	}
}

func TestBufferLayoutsBindingOutOfRange(t *testing.T) {
	l := MustNewVertexLayout(NewVertexAttribute(SemanticPosition, common.FormatR32G32B32Float, WithBinding(MaxVertexBindings)))
	if _, err := l.BufferLayouts(wgpu.VertexStepModeVertex); !errors.Is(err, ErrBindingOutOfRange) {
		t.Errorf("BufferLayouts error = %v, want ErrBindingOutOfRange", err)
	}
}

func TestFetchSize(t *testing.T) {
	tests := []struct {
		format common.Format
		want   uint32
	}{
		{common.FormatR16G16Unorm, 4},
		{common.FormatR32G32B32Float, 12},
		{common.FormatR8G8B8A8Unorm, 4},
		{common.FormatR8G8B8Unorm, 3},
		{common.FormatB8G8R8A8Unorm, 4},
		{common.FormatD32Float, 0},
	}
	for _, tt := range tests {
		if got := FetchSize(tt.format); got != tt.want {
			t.Errorf("FetchSize(%s) = %d, want %d", tt.format, got, tt.want)
		}
	}

	// Only R16G16_UNORM reads more bytes than its stride width.
	for _, f := range common.Formats() {
		if f == common.FormatR16G16Unorm {
			continue
		}
		if FetchSize(f) != ToStride(f) {
			t.Errorf("FetchSize(%s) = %d, ToStride = %d", f, FetchSize(f), ToStride(f))
		}
	}
}

func TestBufferLayoutsR16G16UnormStride(t *testing.T) {
	l := MustNewVertexLayout(
		NewVertexAttribute(SemanticPosition, common.FormatR32G32B32Float),
		NewVertexAttribute(SemanticTexCoord0, common.FormatR16G16Unorm, WithLocation(1), WithOffset(12)),
	)
	if l.Stride() != 14 {
		t.Errorf("Stride() = %d, want 14", l.Stride())
	}
	bufs, err := l.BufferLayouts(wgpu.VertexStepModeVertex)
	if err != nil {
		t.Fatalf("BufferLayouts: %v", err)
	}
	if bufs[0].ArrayStride != 16 {
		t.Errorf("ArrayStride = %d, want 16", bufs[0].ArrayStride)
	}
}

func TestBufferLayoutsUnsupportedFormat(t *testing.T) {
	l := MustNewVertexLayout(NewVertexAttribute(SemanticColor, common.FormatB8G8R8A8Unorm))
	if _, err := l.BufferLayouts(wgpu.VertexStepModeVertex); !errors.Is(err, ErrUnsupportedVertexFormat) {
		t.Errorf("BufferLayouts error = %v, want ErrUnsupportedVertexFormat", err)
	}

	bufs, err := VertexLayout{}.BufferLayouts(wgpu.VertexStepModeVertex)
	if err != nil || bufs != nil {
		t.Errorf("empty layout BufferLayouts = %v, %v, want nil, nil", bufs, err)
	}
}
