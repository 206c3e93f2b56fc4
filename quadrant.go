package testpattern

// Quadrant names one of the four regions of a test pattern.
type Quadrant uint8

const (
	// TopLeft holds the checkerboard.
	TopLeft Quadrant = iota
	// TopRight holds the vertical bars.
	TopRight
	// BottomLeft holds the gradient bands.
	BottomLeft
	// BottomRight holds the rainbow sweep.
	BottomRight
)

// String returns a string representation of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Rect is the half-open pixel rectangle [Left,Right)×[Top,Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the number of columns in r.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the number of rows in r.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Area returns the number of pixels in r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Quadrants splits a width×height image at (width/2, height/2).
// With odd sizes the right column and bottom row quadrants are one pixel
// larger than their neighbors.
func Quadrants(width, height int) [4]Rect {
	mx, my := width/2, height/2
	return [4]Rect{
		TopLeft:     {Left: 0, Top: 0, Right: mx, Bottom: my},
		TopRight:    {Left: mx, Top: 0, Right: width, Bottom: my},
		BottomLeft:  {Left: 0, Top: my, Right: mx, Bottom: height},
		BottomRight: {Left: mx, Top: my, Right: width, Bottom: height},
	}
}
