package shape

import "math"

// Sector is a pie slice, or an annular sector when Style.R0 is positive.
//
// StartAngle and EndAngle are in degrees and grow anticlockwise on screen;
// set Style.Clockwise to sweep the other way. A sweep of 360 degrees or more
// draws the full disk or ring.
type Sector struct {
	Base
}

// NewSector returns the sector shape.
func NewSector() *Sector { return &Sector{} }

func (*Sector) Type() string { return "sector" }

// BuildPath traces the inner start point, the outer arc and, when R0 is not
// zero, the inner arc back in the opposite direction. The opposite windings
// make a non-zero fill leave the inner disk empty.
func (*Sector) BuildPath(ctx Context, s *Style) {
	x, y, r0, r := s.X, s.Y, s.R0, s.R
	start := degToRad(s.StartAngle)
	end := degToRad(s.EndAngle)

	// Canvas angles grow towards +y, which is clockwise on screen.
	a0 := twoPi - start
	a1 := twoPi - end
	if math.Abs(s.EndAngle-s.StartAngle) >= 360 {
		a1 = a0 - twoPi
	}

	ctx.MoveTo(math.Cos(start)*r0+x, y-math.Sin(start)*r0)
	ctx.LineTo(math.Cos(start)*r+x, y-math.Sin(start)*r)
	ctx.Arc(x, y, r, a0, a1, !s.Clockwise)
	ctx.LineTo(math.Cos(end)*r0+x, y-math.Sin(end)*r0)
	if r0 != 0 {
		ctx.Arc(x, y, r0, a1, a0, s.Clockwise)
	}
}

func (sc *Sector) Brush(ctx Context, e *Entity, highlight bool) error {
	return sc.PaintOutline(ctx, e, highlight, sc)
}

// Rect returns the bounding box of the swept region.
func (*Sector) Rect(s *Style) Rect {
	from, span := sweepRange(s)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(deg, radius float64) {
		a := degToRad(deg)
		px := s.X + radius*math.Cos(a)
		py := s.Y - radius*math.Sin(a)
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	for _, radius := range []float64{s.R0, s.R} {
		add(from, radius)
		add(from+span, radius)
		for axis := 0.0; axis < 360; axis += 90 {
			if inSweep(axis, from, span) {
				add(axis, radius)
			}
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether (px, py) lies on the sector.
func (*Sector) Contains(s *Style, px, py float64) bool {
	dx, dy := px-s.X, s.Y-py
	d := math.Hypot(dx, dy)
	if d < s.R0 || d > s.R {
		return false
	}
	if d == 0 {
		return true
	}
	from, span := sweepRange(s)
	return inSweep(radToDeg(math.Atan2(dy, dx)), from, span)
}

// sweepRange normalises a sector's sweep to a start angle and a
// non-negative anticlockwise span, both in degrees.
func sweepRange(s *Style) (from, span float64) {
	from, to := s.StartAngle, s.EndAngle
	if s.Clockwise {
		from, to = to, from
	}
	if math.Abs(s.EndAngle-s.StartAngle) >= 360 {
		return from, 360
	}
	return from, wrapDegrees(to - from)
}

func inSweep(deg, from, span float64) bool {
	return wrapDegrees(deg-from) <= span
}

// wrapDegrees maps d into [0, 360).
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
