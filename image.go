package testpattern

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gogpu/testpattern/internal/color"
	"github.com/gogpu/testpattern/internal/image"
)

// Image is an owned pixel buffer produced by a Producer.
type Image = image.ImageBuf

// Accessor is the scoped write view passed to Image.Edit.
type Accessor = image.Accessor

// Format is a pixel storage format.
type Format = image.Format

// Vector4 is a normalized straight-alpha RGBA color.
type Vector4 = color.Vector4

// Supported pixel formats.
const (
	FormatRGBA8  = image.FormatRGBA8
	FormatBGRA8  = image.FormatBGRA8
	FormatRGB8   = image.FormatRGB8
	FormatRGB565 = image.FormatRGB565
	FormatRGBA64 = image.FormatRGBA64
	FormatGray8  = image.FormatGray8
	FormatGray16 = image.FormatGray16
)

// MaxPackedValue is the largest value of the packed RGBA32 accumulator used
// by the rainbow sweep.
const MaxPackedValue = color.MaxPackedValue

// Errors returned by descriptor validation. Both wrap the corresponding
// errors of the image buffer layer.
var (
	// ErrInvalidDimension is returned for a negative width or height, or for
	// a size whose byte count overflows int.
	ErrInvalidDimension = fmt.Errorf("testpattern: %w", image.ErrInvalidDimensions)

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = fmt.Errorf("testpattern: %w", image.ErrInvalidFormat)

	// ErrProducerMismatch is returned when a Producer returns an image whose
	// size or format differs from the requested Descriptor.
	ErrProducerMismatch = errors.New("testpattern: producer returned mismatched image")
)

// Descriptor identifies one generated pattern.
// The zero Format is FormatRGBA8.
type Descriptor struct {
	Width  int
	Height int
	Format Format
}

// NewDescriptor returns an RGBA8 descriptor for the given size.
func NewDescriptor(width, height int) Descriptor {
	return Descriptor{Width: width, Height: height, Format: FormatRGBA8}
}

// Validate reports whether d describes an image that can be generated.
// Zero dimensions are valid.
func (d Descriptor) Validate() error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, d.Width, d.Height)
	}
	if !d.Format.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFormat, uint8(d.Format))
	}
	if !d.Format.FitsImage(d.Width, d.Height) {
		return fmt.Errorf("%w: %dx%d %s overflows", ErrInvalidDimension, d.Width, d.Height, d.Format)
	}
	return nil
}

// Key returns the unique cache key of d, e.g. "120x60/RGBA8".
func (d Descriptor) Key() string {
	return strconv.Itoa(d.Width) + "x" + strconv.Itoa(d.Height) + "/" + d.Format.String()
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	return d.Key()
}

// matches reports whether img has the size and format d describes.
func (d Descriptor) matches(img *Image) bool {
	return img != nil &&
		img.Width() == d.Width &&
		img.Height() == d.Height &&
		img.Format() == d.Format
}
