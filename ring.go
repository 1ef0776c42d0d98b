package shape

import "math"

// Ring is an annulus: the region between two concentric circles of radii
// Style.R0 and Style.R. Its path is a sector spanning the full 360 degrees.
type Ring struct {
	Base
	sector PathBuilder
}

// NewRing returns a ring that delegates its geometry to sector. A nil sector
// uses a fresh [Sector].
func NewRing(sector PathBuilder) *Ring {
	if sector == nil {
		sector = NewSector()
	}
	return &Ring{sector: sector}
}

func (*Ring) Type() string { return "ring" }

// BuildPath appends the annulus outline. R0 > R is passed through to the
// sector builder unchanged.
func (r *Ring) BuildPath(ctx Context, s *Style) {
	r.sector.BuildPath(ctx, &Style{
		X:          s.X,
		Y:          s.Y,
		R0:         s.R0,
		R:          s.R,
		StartAngle: 0,
		EndAngle:   360,
	})
}

// Brush fills the annulus and, for stroke brushes, outlines the inner and
// outer circles as two separate subpaths; there are no radial edges.
func (r *Ring) Brush(ctx Context, e *Entity, highlight bool) error {
	style := r.Prepare(e, highlight)

	ctx.Save()
	defer ctx.Restore()

	if err := r.SetContext(ctx, &style); err != nil {
		return err
	}
	r.ApplyTransform(ctx, e)

	ctx.BeginPath()
	r.BuildPath(ctx, &style)
	ctx.ClosePath()

	style.BrushType = style.brushType()

	if style.BrushType.fills() {
		if err := ctx.Fill(); err != nil {
			return err
		}
	}

	if style.BrushType.strokes() {
		ctx.BeginPath()
		ctx.MoveTo(style.R0+style.X, style.Y)
		ctx.Arc(style.X, style.Y, style.R0, 0, twoPi, true)
		ctx.MoveTo(style.R+style.X, style.Y)
		ctx.Arc(style.X, style.Y, style.R, 0, twoPi, true)
		ctx.ClosePath()
		if err := ctx.Stroke(); err != nil {
			return err
		}
	}

	if style.Text != "" {
		style.TextColor = r.LabelColor(&style, &e.Style)
		return r.DrawText(ctx, &style, r.Rect(&style))
	}
	return nil
}

// Rect returns the square around the outer circle. The inner radius never
// widens it.
func (*Ring) Rect(s *Style) Rect {
	return Rect{
		X:      s.X - s.R,
		Y:      s.Y - s.R,
		Width:  s.R * 2,
		Height: s.R * 2,
	}
}

// Contains reports whether (x, y) lies between the two circles, edges
// included.
func (r *Ring) Contains(s *Style, x, y float64) bool {
	if !r.Rect(s).Contains(x, y) {
		return false
	}
	d := math.Hypot(x-s.X, y-s.Y)
	return d >= s.R0 && d <= s.R
}
