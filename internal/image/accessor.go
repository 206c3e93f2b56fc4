package image

import "github.com/gogpu/testpattern/internal/color"

// Accessor is a mutable 2-D view over an ImageBuf, valid only for the
// duration of the Edit call that created it.
//
// Writes outside the buffer bounds are ignored. Any use after release
// panics.
type Accessor struct {
	buf      *ImageBuf
	released bool
}

func (a *Accessor) release() {
	a.released = true
}

func (a *Accessor) check() *ImageBuf {
	if a.released {
		panic("image: accessor used after Edit returned")
	}
	return a.buf
}

// Width returns the width of the underlying buffer.
func (a *Accessor) Width() int {
	return a.check().width
}

// Height returns the height of the underlying buffer.
func (a *Accessor) Height() int {
	return a.check().height
}

// Format returns the pixel format of the underlying buffer.
func (a *Accessor) Format() Format {
	return a.check().format
}

// Get returns the packed value at (x, y), or 0 when out of bounds.
func (a *Accessor) Get(x, y int) uint64 {
	return a.check().Pixel(x, y)
}

// Set stores a packed value at (x, y).
func (a *Accessor) Set(x, y int, p uint64) {
	b := a.check()
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return
	}
	b.store(offset, p)
}

// SetVector packs v in the buffer's format and stores it at (x, y).
func (a *Accessor) SetVector(x, y int, v color.Vector4) {
	a.Set(x, y, a.check().format.PackFromVector4(v))
}

// Vector returns the normalized color at (x, y).
func (a *Accessor) Vector(x, y int) color.Vector4 {
	return a.check().VectorAt(x, y)
}

// FillRect stores p in every pixel of [x0,x1)×[y0,y1), clipped to the
// buffer bounds.
func (a *Accessor) FillRect(x0, y0, x1, y1 int, p uint64) {
	b := a.check()
	x0, x1 = max(x0, 0), min(x1, b.width)
	y0, y1 = max(y0, 0), min(y1, b.height)
	bpp := b.format.BytesPerPixel()
	for y := y0; y < y1; y++ {
		row := y * b.stride
		for x := x0; x < x1; x++ {
			b.store(row+x*bpp, p)
		}
	}
}
