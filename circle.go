package shape

import "math"

// Circle is a disk of radius Style.R centred on (Style.X, Style.Y).
type Circle struct {
	Base
}

// NewCircle returns the circle shape.
func NewCircle() *Circle { return &Circle{} }

func (*Circle) Type() string { return "circle" }

func (*Circle) BuildPath(ctx Context, s *Style) {
	ctx.Arc(s.X, s.Y, s.R, 0, twoPi, true)
}

func (c *Circle) Brush(ctx Context, e *Entity, highlight bool) error {
	return c.PaintOutline(ctx, e, highlight, c)
}

func (*Circle) Rect(s *Style) Rect {
	return Rect{X: s.X - s.R, Y: s.Y - s.R, Width: 2 * s.R, Height: 2 * s.R}
}

func (*Circle) Contains(s *Style, x, y float64) bool {
	return math.Hypot(x-s.X, y-s.Y) <= s.R
}
