package testpattern

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/testpattern/internal/color"
)

// Reference colors used by the pattern renderers, resolved from the
// SVG 1.1 named color table. Green is the CSS green (#008000), not lime.
var (
	Black   = mustNamed("black")
	White   = mustNamed("white")
	HotPink = mustNamed("hotpink")
	Blue    = mustNamed("blue")
	Red     = mustNamed("red")
	Green   = mustNamed("green")
)

// NamedColor looks up an SVG 1.1 color name (case-insensitive) and returns
// it as an opaque Vector4.
func NamedColor(name string) (Vector4, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Vector4{}, false
	}
	return color.U8ToVector(color.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A}), true
}

func mustNamed(name string) Vector4 {
	v, ok := NamedColor(name)
	if !ok {
		panic("testpattern: unknown color " + name)
	}
	return v
}
