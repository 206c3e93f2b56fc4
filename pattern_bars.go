package testpattern

// BarStride returns the bar width of the vertical bars for an image of the
// given width.
func BarStride(width int) int {
	return max(1, width/12)
}

// verticalBars fills r with alternating hot pink and blue columns.
//
// Bars are aligned to absolute multiples of the stride. The first bar
// boundary at or right of r.Left switches to blue, so when r.Left is itself
// a boundary the quadrant starts blue.
func verticalBars(px *Accessor, r Rect) {
	if r.Empty() {
		return
	}
	stride := BarStride(px.Width())
	f := px.Format()
	bars := [2]uint64{f.PackFromVector4(HotPink), f.PackFromVector4(Blue)}

	// Boundaries strictly left of r.Left.
	before := (r.Left + stride - 1) / stride
	for x := r.Left; x < r.Right; x++ {
		px.FillRect(x, r.Top, x+1, r.Bottom, bars[(x/stride+1-before)%2])
	}
}
