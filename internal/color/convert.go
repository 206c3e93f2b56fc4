package color

import "math"

// U8ToVector converts ColorU8 to Vector4.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToVector(c ColorU8) Vector4 {
	return Vector4{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// VectorToU8 converts Vector4 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func VectorToU8(v Vector4) ColorU8 {
	return ColorU8{
		R: uint8(Quantize(v.R, 255)),
		G: uint8(Quantize(v.G, 255)),
		B: uint8(Quantize(v.B, 255)),
		A: uint8(Quantize(v.A, 255)),
	}
}

// Quantize clamps v to [0,1] and scales it to [0,maxValue] with rounding.
func Quantize(v float32, maxValue uint32) uint32 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	if v >= 1 {
		return maxValue
	}
	return uint32(float64(v)*float64(maxValue) + 0.5)
}

// Expand maps an integer channel in [0,maxValue] back to [0,1].
func Expand(q, maxValue uint32) float32 {
	if maxValue == 0 {
		return 0
	}
	return float32(float64(q) / float64(maxValue))
}

// Luminance returns the Rec. 601 luma of v in [0,1].
// Alpha is ignored.
func Luminance(v Vector4) float32 {
	return 0.299*v.R + 0.587*v.G + 0.114*v.B
}
