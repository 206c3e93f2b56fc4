package image

import (
	"image"

	"github.com/gogpu/testpattern/internal/color"
)

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Returns *image.Gray or *image.Gray16 for grayscale formats,
// *image.NRGBA64 for RGBA64 and *image.NRGBA otherwise.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	case FormatGray16:
		gray16 := image.NewGray16(rect)
		for y := range b.height {
			row := b.RowBytes(y)
			dstStart := y * gray16.Stride
			for x := range b.width {
				// Gray16 in image package is big-endian
				gray16.Pix[dstStart+x*2] = row[x*2+1]
				gray16.Pix[dstStart+x*2+1] = row[x*2]
			}
		}
		return gray16

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		if b.stride == nrgba.Stride {
			copy(nrgba.Pix, b.data)
		} else {
			for y := range b.height {
				copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
			}
		}
		return nrgba

	case FormatRGBA64:
		nrgba64 := image.NewNRGBA64(rect)
		for y := range b.height {
			dstStart := y * nrgba64.Stride
			for x := range b.width {
				p := b.Pixel(x, y)
				off := dstStart + x*8
				for ch := range 4 {
					v := uint16(p >> (16 * ch))
					nrgba64.Pix[off+ch*2] = byte(v >> 8)
					nrgba64.Pix[off+ch*2+1] = byte(v)
				}
			}
		}
		return nrgba64

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			for x := range b.width {
				c := color.VectorToU8(b.VectorAt(x, y))
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = c.R
				nrgba.Pix[off+1] = c.G
				nrgba.Pix[off+2] = c.B
				nrgba.Pix[off+3] = c.A
			}
		}
		return nrgba
	}
}
