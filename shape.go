package shape

// PathBuilder appends a shape's geometry to the current path of a Context.
// It never fills or strokes.
type PathBuilder interface {
	BuildPath(ctx Context, s *Style)
}

// PathBuilderFunc adapts a function to PathBuilder.
type PathBuilderFunc func(ctx Context, s *Style)

func (f PathBuilderFunc) BuildPath(ctx Context, s *Style) { f(ctx, s) }

// Shape is the contract every shape type satisfies so that hosts can paint,
// repaint and hit-test variants polymorphically.
type Shape interface {
	PathBuilder

	// Type returns the registry tag, e.g. "ring".
	Type() string

	// Brush paints e into ctx, using the highlight style when highlight is
	// set. The context's save depth is the same before and after the call.
	Brush(ctx Context, e *Entity, highlight bool) error

	// Rect returns the axis-aligned bounding box of the shape described by s.
	Rect(s *Style) Rect
}

// Hitter is implemented by shapes that can test whether a point lies on
// them.
type Hitter interface {
	Contains(s *Style, x, y float64) bool
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Center returns the centre of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
