// Package color provides the normalized color vector and the packing
// primitives shared by every pixel format in testpattern.
package color

// Vector4 represents a color with float32 components in [0,1].
// Components are straight (not premultiplied) sRGB values.
type Vector4 struct {
	R, G, B, A float32
}

// WithAlpha returns a copy of v with the alpha component replaced.
func (v Vector4) WithAlpha(a float32) Vector4 {
	v.A = a
	return v
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Opaque returns an opaque color from RGB components.
func Opaque(r, g, b float32) Vector4 {
	return Vector4{R: r, G: g, B: b, A: 1}
}
