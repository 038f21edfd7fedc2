// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain
// enums and helpers that express commonly used data-types.
package common

// Format identifies the in-buffer representation of a single texel or vertex element.
// It is a closed set; values outside of it are invalid and stringify to an empty string.
type Format int

const (
	// FormatUndefined is the zero Format, it has no byte width.
	FormatUndefined Format = iota

	FormatR8Unorm
	FormatR16Unorm
	FormatR16Float
	FormatR32Uint
	FormatR32Float
	FormatR8G8Unorm
	FormatR16G16Unorm
	FormatR16G16Float
	FormatR32G32Uint
	FormatR32G32Float
	FormatR8G8B8Unorm
	FormatR16G16B16Unorm
	FormatR16G16B16Float
	FormatR32G32B32Uint
	FormatR32G32B32Float
	FormatB8G8R8A8Unorm
	FormatR8G8B8A8Unorm
	FormatR16G16B16A16Unorm
	FormatR16G16B16A16Float
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Float

	// Depth and stencil formats. These are valid texture formats but never valid vertex formats.

	FormatD16Unorm
	FormatX8D24UnormPack32
	FormatD32Float
	FormatS8Uint
	FormatD16UnormS8Uint
	FormatD24UnormS8Uint
	FormatD32FloatS8Uint

	// formatCount is one past the last defined Format.
	formatCount
)

// formatNames holds the upper-case tag for every defined Format, indexed by value.
var formatNames = [formatCount]string{
	FormatUndefined:         "UNDEFINED",
	FormatR8Unorm:           "R8_UNORM",
	FormatR16Unorm:          "R16_UNORM",
	FormatR16Float:          "R16_FLOAT",
	FormatR32Uint:           "R32_UINT",
	FormatR32Float:          "R32_FLOAT",
	FormatR8G8Unorm:         "R8G8_UNORM",
	FormatR16G16Unorm:       "R16G16_UNORM",
	FormatR16G16Float:       "R16G16_FLOAT",
	FormatR32G32Uint:        "R32G32_UINT",
	FormatR32G32Float:       "R32G32_FLOAT",
	FormatR8G8B8Unorm:       "R8G8B8_UNORM",
	FormatR16G16B16Unorm:    "R16G16B16_UNORM",
	FormatR16G16B16Float:    "R16G16B16_FLOAT",
	FormatR32G32B32Uint:     "R32G32B32_UINT",
	FormatR32G32B32Float:    "R32G32B32_FLOAT",
	FormatB8G8R8A8Unorm:     "B8G8R8A8_UNORM",
	FormatR8G8B8A8Unorm:     "R8G8B8A8_UNORM",
	FormatR16G16B16A16Unorm: "R16G16B16A16_UNORM",
	FormatR16G16B16A16Float: "R16G16B16A16_FLOAT",
	FormatR32G32B32A32Uint:  "R32G32B32A32_UINT",
	FormatR32G32B32A32Float: "R32G32B32A32_FLOAT",
	FormatD16Unorm:          "D16_UNORM",
	FormatX8D24UnormPack32:  "X8_D24_UNORM_PACK32",
	FormatD32Float:          "D32_FLOAT",
	FormatS8Uint:            "S8_UINT",
	FormatD16UnormS8Uint:    "D16_UNORM_S8_UINT",
	FormatD24UnormS8Uint:    "D24_UNORM_S8_UINT",
	FormatD32FloatS8Uint:    "D32_FLOAT_S8_UINT",
}

// String returns the upper-case tag of the Format, e.g. "R32G32B32_FLOAT".
//
// Returns:
//   - string: the tag name, or an empty string if f is not a defined Format
func (f Format) String() string {
	if !f.Valid() {
		return ""
	}
	return formatNames[f]
}

// Valid reports whether f is one of the defined Format values.
//
// Returns:
//   - bool: true if f is inside the closed Format set
func (f Format) Valid() bool {
	return f >= FormatUndefined && f < formatCount
}

// IsDepthStencil reports whether f is a depth and/or stencil format.
//
// Returns:
//   - bool: true for the D*/S*/X8_D24 formats, false otherwise
func (f Format) IsDepthStencil() bool {
	return f >= FormatD16Unorm && f < formatCount
}

// Formats returns every defined Format in declaration order, starting with FormatUndefined.
//
// Returns:
//   - []Format: a freshly allocated slice of all Format values
func Formats() []Format {
	out := make([]Format, 0, formatCount)
	for f := FormatUndefined; f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}
