package image

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/testpattern/internal/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative or
	// the buffer size would overflow int.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrFrozen is returned when editing a buffer that has been frozen.
	ErrFrozen = errors.New("image: buffer is frozen")
)

// ImageBuf is an owned pixel buffer.
//
// ImageBuf stores packed pixel values in a contiguous byte slice, each pixel
// occupying Format.BytesPerPixel bytes in little-endian order. Zero width or
// height is allowed and yields an empty buffer.
//
// Pixels are written only inside Edit. Once Freeze has been called the
// buffer is read-only for the rest of its life.
//
// Thread safety: ImageBuf is safe for concurrent read access. Edit calls
// are serialized per buffer.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	editMu sync.Mutex
	frozen atomic.Bool
	pooled atomic.Bool
}

// NewImageBuf creates a new zeroed image buffer with the given dimensions
// and format. Returns an error if a dimension is negative, the byte size
// overflows int or the format is unknown.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if !format.FitsImage(width, height) {
		return nil, ErrInvalidDimensions
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep, unfrozen copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice. A frozen buffer returns a copy.
func (b *ImageBuf) Data() []byte {
	if b.frozen.Load() {
		return bytes.Clone(b.data)
	}
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Pixel returns the packed value at (x, y), or 0 when out of bounds.
func (b *ImageBuf) Pixel(x, y int) uint64 {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return 0
	}
	return b.load(offset)
}

// VectorAt returns the normalized color at (x, y).
// Out-of-bounds coordinates return transparent black.
func (b *ImageBuf) VectorAt(x, y int) color.Vector4 {
	if b.PixelOffset(x, y) < 0 {
		return color.Vector4{}
	}
	return b.format.ToVector4(b.Pixel(x, y))
}

func (b *ImageBuf) load(offset int) uint64 {
	var p uint64
	for i := range b.format.BytesPerPixel() {
		p |= uint64(b.data[offset+i]) << (8 * i)
	}
	return p
}

func (b *ImageBuf) store(offset int, p uint64) {
	for i := range b.format.BytesPerPixel() {
		b.data[offset+i] = byte(p >> (8 * i))
	}
}

// Edit runs fn with exclusive write access to the buffer.
// The Accessor passed to fn is released when fn returns or panics and must
// not be retained. Returns ErrFrozen if the buffer has been frozen.
func (b *ImageBuf) Edit(fn func(px *Accessor)) error {
	if b.frozen.Load() {
		return ErrFrozen
	}

	b.editMu.Lock()
	defer b.editMu.Unlock()

	// Re-check: Freeze may have won the race for editMu.
	if b.frozen.Load() {
		return ErrFrozen
	}

	px := &Accessor{buf: b}
	defer px.release()
	fn(px)
	return nil
}

// Freeze makes the buffer permanently read-only.
// Freeze waits for an Edit in progress to finish.
func (b *ImageBuf) Freeze() {
	b.editMu.Lock()
	b.frozen.Store(true)
	b.editMu.Unlock()
}

// IsFrozen reports whether Freeze has been called.
func (b *ImageBuf) IsFrozen() bool {
	return b.frozen.Load()
}

// Equal reports whether both buffers have the same dimensions, format and
// pixel content.
func (b *ImageBuf) Equal(other *ImageBuf) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width &&
		b.height == other.height &&
		b.format == other.format &&
		bytes.Equal(b.data, other.data)
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
