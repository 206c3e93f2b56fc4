package testpattern

import "testing"

func TestQuadrants(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want [4]Rect
	}{
		{
			name: "120x60",
			w:    120, h: 60,
			want: [4]Rect{
				{0, 0, 60, 30},
				{60, 0, 120, 30},
				{0, 30, 60, 60},
				{60, 30, 120, 60},
			},
		},
		{
			name: "odd 5x3",
			w:    5, h: 3,
			want: [4]Rect{
				{0, 0, 2, 1},
				{2, 0, 5, 1},
				{0, 1, 2, 3},
				{2, 1, 5, 3},
			},
		},
		{
			name: "1x1",
			w:    1, h: 1,
			want: [4]Rect{
				{0, 0, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
				{0, 0, 1, 1},
			},
		},
		{
			name: "empty",
			w:    0, h: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quadrants(tt.w, tt.h)
			if got != tt.want {
				t.Errorf("Quadrants(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

// Every pixel belongs to exactly one quadrant.
func TestQuadrantsPartition(t *testing.T) {
	for _, size := range [][2]int{{120, 60}, {7, 9}, {1, 4}, {13, 1}, {2, 2}} {
		w, h := size[0], size[1]
		quads := Quadrants(w, h)
		total := 0
		for _, r := range quads {
			total += r.Area()
		}
		if total != w*h {
			t.Errorf("%dx%d: quadrant areas sum to %d, want %d", w, h, total, w*h)
		}
		for y := range h {
			for x := range w {
				n := 0
				for _, r := range quads {
					if r.Contains(x, y) {
						n++
					}
				}
				if n != 1 {
					t.Fatalf("%dx%d: pixel (%d,%d) in %d quadrants", w, h, x, y, n)
				}
			}
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 2, Top: 3, Right: 6, Bottom: 4}
	if r.Width() != 4 || r.Height() != 1 || r.Area() != 4 || r.Empty() {
		t.Errorf("Rect %v: width=%d height=%d area=%d empty=%v", r, r.Width(), r.Height(), r.Area(), r.Empty())
	}
	if !r.Contains(2, 3) || r.Contains(6, 3) || r.Contains(2, 4) {
		t.Error("Contains must treat the rectangle as half-open")
	}
	inverted := Rect{Left: 5, Top: 0, Right: 2, Bottom: 3}
	if !inverted.Empty() || inverted.Area() != 0 {
		t.Errorf("inverted rect should be empty with zero area, got area %d", inverted.Area())
	}
}

func TestQuadrantString(t *testing.T) {
	tests := []struct {
		q    Quadrant
		want string
	}{
		{TopLeft, "TopLeft"},
		{TopRight, "TopRight"},
		{BottomLeft, "BottomLeft"},
		{BottomRight, "BottomRight"},
		{Quadrant(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quadrant(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}
