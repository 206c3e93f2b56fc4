package image

import (
	"image"
	stdcolor "image/color"
	"testing"
)

func TestToStdImage(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		pixel  uint64
		want   stdcolor.Color
	}{
		{"RGBA8", FormatRGBA8, 0x80FF0000, stdcolor.NRGBA{B: 255, A: 128}},
		{"BGRA8", FormatBGRA8, 0xFF0000FF, stdcolor.NRGBA{B: 255, A: 255}},
		{"RGB8", FormatRGB8, 0x00FF00, stdcolor.NRGBA{G: 255, A: 255}},
		{"RGB565", FormatRGB565, 0xF800, stdcolor.NRGBA{R: 255, A: 255}},
		{"Gray8", FormatGray8, 0x7F, stdcolor.Gray{Y: 0x7F}},
		{"Gray16", FormatGray16, 0x1234, stdcolor.Gray16{Y: 0x1234}},
		{"RGBA64", FormatRGBA64, 0xFFFF_0000_0000_FFFF, stdcolor.NRGBA64{R: 0xFFFF, A: 0xFFFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, _ := NewImageBuf(3, 2, tt.format)
			_ = buf.Edit(func(px *Accessor) { px.Set(2, 1, tt.pixel) })

			img := buf.ToStdImage()
			if img.Bounds() != image.Rect(0, 0, 3, 2) {
				t.Fatalf("Bounds() = %v", img.Bounds())
			}
			if got := img.At(2, 1); got != tt.want {
				t.Errorf("At(2, 1) = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestToStdImage_Empty(t *testing.T) {
	buf, _ := NewImageBuf(0, 0, FormatRGBA8)
	if img := buf.ToStdImage(); !img.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", img.Bounds())
	}
}
