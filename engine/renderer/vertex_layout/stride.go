package vertex_layout

import "github.com/Carmen-Shannon/oxy-layout/common"

// formatStrides is the byte width of one element of every defined common.Format.
// It must list every Format; depth/stencil formats and FormatUndefined are deliberately 0.
var formatStrides = map[common.Format]uint32{
	common.FormatUndefined: 0,

	common.FormatR8Unorm:   1,
	common.FormatR16Unorm:  2,
	common.FormatR16Float:  2,
	common.FormatR32Uint:   4,
	common.FormatR32Float:  4,

	common.FormatR8G8Unorm:   2,
	common.FormatR16G16Unorm: 2,
	common.FormatR16G16Float: 4,
	common.FormatR32G32Uint:  8,
	common.FormatR32G32Float: 8,

	common.FormatR8G8B8Unorm:    3,
	common.FormatR16G16B16Unorm: 6,
	common.FormatR16G16B16Float: 6,
	common.FormatR32G32B32Uint:  12,
	common.FormatR32G32B32Float: 12,

	common.FormatB8G8R8A8Unorm:     4,
	common.FormatR8G8B8A8Unorm:     4,
	common.FormatR16G16B16A16Unorm: 8,
	common.FormatR16G16B16A16Float: 8,
	common.FormatR32G32B32A32Uint:  16,
	common.FormatR32G32B32A32Float: 16,

	common.FormatD16Unorm:         0,
	common.FormatX8D24UnormPack32: 0,
	common.FormatD32Float:         0,
	common.FormatS8Uint:           0,
	common.FormatD16UnormS8Uint:   0,
	common.FormatD24UnormS8Uint:   0,
	common.FormatD32FloatS8Uint:   0,
}

// ToStride returns the number of bytes one element of the given format occupies in a vertex record.
// It is total: depth/stencil formats, FormatUndefined and values outside the Format set return 0,
// since callers such as format introspection may legitimately pass them.
//
// Parameters:
//   - format: the format to measure
//
// Returns:
//   - uint32: the byte width of the format, or 0 if it has no vertex width
func ToStride(format common.Format) uint32 {
	return formatStrides[format]
}
