package shape

import "github.com/gogpu/gg"

// Entity is a styled shape instance owned by the host's scene registry.
// Shapes only read entities.
type Entity struct {
	ID string
	// Type is the registry tag of the shape that paints this entity.
	Type string
	// ZLevel selects the host's layer. Shapes ignore it.
	ZLevel    int
	Invisible bool

	Style Style
	// HighlightStyle is merged over Style when painting in the highlighted
	// state. nil behaves like an empty style.
	HighlightStyle *Style

	// Position translates the shape.
	Position gg.Point
	// Rotation is in radians, anticlockwise on screen, about RotationOrigin.
	Rotation       float64
	RotationOrigin gg.Point
	// Scale factors about ScaleOrigin. A zero component means 1.
	Scale       gg.Point
	ScaleOrigin gg.Point
}

// Matrix returns the entity's transform: scale about ScaleOrigin, then
// rotate about RotationOrigin, then translate by Position.
func (e *Entity) Matrix() gg.Matrix {
	m := gg.Identity()

	sx, sy := e.Scale.X, e.Scale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sx != 1 || sy != 1 {
		o := e.ScaleOrigin
		m = gg.Translate(o.X, o.Y).Multiply(gg.Scale(sx, sy)).Multiply(gg.Translate(-o.X, -o.Y))
	}

	if e.Rotation != 0 {
		o := e.RotationOrigin
		// gg.Rotate turns clockwise on a y-down screen.
		r := gg.Translate(o.X, o.Y).Multiply(gg.Rotate(-e.Rotation)).Multiply(gg.Translate(-o.X, -o.Y))
		m = r.Multiply(m)
	}

	if e.Position.X != 0 || e.Position.Y != 0 {
		m = gg.Translate(e.Position.X, e.Position.Y).Multiply(m)
	}
	return m
}
