package testpattern

// CheckerStride returns the cell size of the checkerboard for an image of
// the given width.
func CheckerStride(width int) int {
	return max(1, width/6)
}

// checkerboard fills r with black and white cells of CheckerStride pixels.
// The cell at (x, y) is black when x/stride + y/stride is even.
func checkerboard(px *Accessor, r Rect) {
	stride := CheckerStride(px.Width())
	f := px.Format()
	cells := [2]uint64{f.PackFromVector4(Black), f.PackFromVector4(White)}

	for y := r.Top; y < r.Bottom; y++ {
		row := y / stride
		for x := r.Left; x < r.Right; x++ {
			px.Set(x, y, cells[(x/stride+row)%2])
		}
	}
}
