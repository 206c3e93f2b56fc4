// Package image provides the pixel buffers testpattern renders into.
//
// A buffer owns its storage, is written only through a scoped Accessor, and
// can be frozen once published so that every later reader works on a copy.
package image

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/testpattern/internal/color"
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBA8 is 32-bit RGBA in sRGB color space (4 bytes per pixel).
	// This is the zero value and the default format.
	FormatRGBA8 Format = iota

	// FormatBGRA8 is 32-bit BGRA in sRGB color space (4 bytes per pixel).
	// Common on Windows and some GPU formats.
	FormatBGRA8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGB565 is 16-bit packed RGB with 5/6/5 bits per channel.
	FormatRGB565

	// FormatRGBA64 is 64-bit RGBA with 16 bits per channel.
	FormatRGBA64

	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8

	// FormatGray16 is 16-bit grayscale (2 bytes per pixel, little endian).
	FormatGray16

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// Bits is the number of significant bits in a packed pixel value.
	Bits int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:  {BytesPerPixel: 1, Channels: 1, IsGrayscale: true, Bits: 8},
	FormatGray16: {BytesPerPixel: 2, Channels: 1, IsGrayscale: true, Bits: 16},
	FormatRGB8:   {BytesPerPixel: 3, Channels: 3, Bits: 24},
	FormatRGBA8:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true, Bits: 32},
	FormatBGRA8:  {BytesPerPixel: 4, Channels: 4, HasAlpha: true, Bits: 32},
	FormatRGB565: {BytesPerPixel: 2, Channels: 3, Bits: 16},
	FormatRGBA64: {BytesPerPixel: 8, Channels: 4, HasAlpha: true, Bits: 64},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// Bits returns the number of significant bits in a packed pixel.
func (f Format) Bits() int {
	return f.Info().Bits
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGray16:
		return "Gray16"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA64:
		return "RGBA64"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// FitsImage reports whether a width×height image of this format has a byte
// size representable as int. Negative dimensions never fit.
func (f Format) FitsImage(width, height int) bool {
	bpp := f.BytesPerPixel()
	if width < 0 || height < 0 || bpp <= 0 {
		return false
	}
	if width > math.MaxInt/bpp {
		return false
	}
	row := width * bpp
	return row == 0 || height <= math.MaxInt/row
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// PackFromVector4 converts a normalized color to the packed pixel value of
// this format. Grayscale formats keep only the luma, formats without alpha
// drop it. Unknown formats pack to 0.
func (f Format) PackFromVector4(v color.Vector4) uint64 {
	switch f {
	case FormatGray8:
		return uint64(color.Quantize(color.Luminance(v), 0xFF))
	case FormatGray16:
		return uint64(color.Quantize(color.Luminance(v), 0xFFFF))
	case FormatRGB8:
		c := color.VectorToU8(v)
		return uint64(c.R) | uint64(c.G)<<8 | uint64(c.B)<<16
	case FormatRGBA8:
		return uint64(color.PackRGBA32(v))
	case FormatBGRA8:
		c := color.VectorToU8(v)
		return uint64(c.B) | uint64(c.G)<<8 | uint64(c.R)<<16 | uint64(c.A)<<24
	case FormatRGB565:
		r := uint64(color.Quantize(v.R, 0x1F))
		g := uint64(color.Quantize(v.G, 0x3F))
		b := uint64(color.Quantize(v.B, 0x1F))
		return r<<11 | g<<5 | b
	case FormatRGBA64:
		r := uint64(color.Quantize(v.R, 0xFFFF))
		g := uint64(color.Quantize(v.G, 0xFFFF))
		b := uint64(color.Quantize(v.B, 0xFFFF))
		a := uint64(color.Quantize(v.A, 0xFFFF))
		return r | g<<16 | b<<32 | a<<48
	default:
		return 0
	}
}

// ToVector4 converts a packed pixel value of this format to a normalized
// color. Formats without alpha report an opaque color.
func (f Format) ToVector4(p uint64) color.Vector4 {
	switch f {
	case FormatGray8:
		g := color.Expand(uint32(p&0xFF), 0xFF)
		return color.Opaque(g, g, g)
	case FormatGray16:
		g := color.Expand(uint32(p&0xFFFF), 0xFFFF)
		return color.Opaque(g, g, g)
	case FormatRGB8:
		return color.U8ToVector(color.ColorU8{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: 0xFF})
	case FormatRGBA8:
		return color.UnpackRGBA32(uint32(p))
	case FormatBGRA8:
		return color.U8ToVector(color.ColorU8{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)})
	case FormatRGB565:
		return color.Opaque(
			color.Expand(uint32(p>>11)&0x1F, 0x1F),
			color.Expand(uint32(p>>5)&0x3F, 0x3F),
			color.Expand(uint32(p)&0x1F, 0x1F),
		)
	case FormatRGBA64:
		return color.Vector4{
			R: color.Expand(uint32(p&0xFFFF), 0xFFFF),
			G: color.Expand(uint32(p>>16&0xFFFF), 0xFFFF),
			B: color.Expand(uint32(p>>32&0xFFFF), 0xFFFF),
			A: color.Expand(uint32(p>>48&0xFFFF), 0xFFFF),
		}
	default:
		return color.Vector4{}
	}
}

// TextureFormat returns the GPU texture format with the same memory layout,
// or gputypes.TextureFormatUndefined when no direct upload is possible.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
