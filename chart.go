package scatter

import (
	"fmt"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Layout gives the size of the drawing surface and the margins around the
// plot area.
type Layout struct {
	Width  float64
	Height float64

	Padding
}

const (
	DefaultWidth  = 760.0
	DefaultHeight = 500.0
)

var defaultPad = Padding{
	Top:    20,
	Right:  40,
	Bottom: 80,
	Left:   100,
}

func DefaultLayout() Layout {
	return Layout{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: defaultPad,
	}
}

func (c Layout) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Layout) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Layout) Validate() error {
	if c.DrawingWidth() <= 0 || c.DrawingHeight() <= 0 {
		return fmt.Errorf("invalid layout %gx%g: plot area is empty", c.Width, c.Height)
	}
	return nil
}
