package testpattern

// BandHeight returns the height of one gradient band for an image of the
// given height. Three bands of this height fill the bottom half; the last
// band takes up any remainder.
func BandHeight(height int) int {
	return (height + 5) / 6
}

// gradientBands fills r with red, green and blue horizontal bands whose
// alpha ramps from 0 at the left edge towards 1 at r.Right.
func gradientBands(px *Accessor, r Rect) {
	if r.Empty() {
		return
	}
	band := BandHeight(px.Height())
	f := px.Format()
	hues := [3]Vector4{Red, Green, Blue}

	for x := r.Left; x < r.Right; x++ {
		alpha := float32(x) / float32(r.Right)
		top := r.Top
		for i, hue := range hues {
			bottom := min(top+band, r.Bottom)
			if i == len(hues)-1 {
				bottom = r.Bottom
			}
			p := f.PackFromVector4(hue.WithAlpha(alpha))
			for y := top; y < bottom; y++ {
				px.Set(x, y, p)
			}
			top = bottom
		}
	}
}
