package color

// MaxPackedValue is the largest RGBA32 packed value.
const MaxPackedValue = ^uint32(0)

// PackRGBA32 packs v into a 32-bit value with R in the lowest byte,
// followed by G, B and A.
func PackRGBA32(v Vector4) uint32 {
	c := VectorToU8(v)
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackRGBA32 is the inverse of PackRGBA32.
func UnpackRGBA32(p uint32) Vector4 {
	return U8ToVector(ColorU8{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	})
}
