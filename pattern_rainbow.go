package testpattern

import "github.com/gogpu/testpattern/internal/color"

// RainbowStep returns the accumulator increment of the rainbow sweep over
// pixelCount pixels: MaxPackedValue / pixelCount, or 0 for no pixels.
func RainbowStep(pixelCount int) uint32 {
	if pixelCount <= 0 {
		return 0
	}
	return uint32(uint64(MaxPackedValue) / uint64(pixelCount))
}

// rainbowSweep walks r column by column, adding RainbowStep to a packed
// RGBA32 accumulator before each pixel and writing the accumulator's color
// converted to the target format. The accumulator wraps on overflow.
func rainbowSweep(px *Accessor, r Rect) {
	if r.Empty() {
		return
	}
	step := RainbowStep(r.Area())
	f := px.Format()

	var acc uint32
	for x := r.Left; x < r.Right; x++ {
		for y := r.Top; y < r.Bottom; y++ {
			acc += step
			px.Set(x, y, f.PackFromVector4(color.UnpackRGBA32(acc)))
		}
	}
}
