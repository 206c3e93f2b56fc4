package testpattern

import (
	"fmt"

	"github.com/gogpu/testpattern/internal/image"
)

// Producer creates the image described by a Descriptor.
//
// Implementations must return a new image of exactly d.Width×d.Height in
// d.Format and must not retain it.
type Producer interface {
	Produce(d Descriptor) (*Image, error)
}

// renderers fill the quadrants of a composed pattern. Every quadrant is
// disjoint, so the order is irrelevant.
var renderers = [4]func(px *Accessor, r Rect){
	TopLeft:     checkerboard,
	TopRight:    verticalBars,
	BottomLeft:  gradientBands,
	BottomRight: rainbowSweep,
}

// Composer is the standard Producer: it renders the checkerboard,
// vertical bars, gradient bands and rainbow sweep into one buffer.
type Composer struct{}

// Produce implements Producer.
func (Composer) Produce(d Descriptor) (*Image, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	buf, err := image.NewImageBuf(d.Width, d.Height, d.Format)
	if err != nil {
		return nil, fmt.Errorf("testpattern: allocate %s: %w", d, err)
	}

	quads := Quadrants(d.Width, d.Height)
	err = buf.Edit(func(px *Accessor) {
		for q, render := range renderers {
			render(px, quads[q])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("testpattern: render %s: %w", d, err)
	}
	return buf, nil
}

// Generate renders an RGBA8 test pattern without caching.
func Generate(width, height int) (*Image, error) {
	return Composer{}.Produce(NewDescriptor(width, height))
}
