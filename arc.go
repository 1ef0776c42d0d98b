package shape

import (
	"math"

	"github.com/gogpu/gg"
)

const twoPi = 2 * math.Pi

// arcSweep returns the signed sweep of a canvas arc from startAngle to
// endAngle. Angles at least a full turn apart, in either order, give a full
// circle in the travel direction; anything less wraps into (-2π, 2π).
func arcSweep(startAngle, endAngle float64, anticlockwise bool) float64 {
	d := endAngle - startAngle
	if math.Abs(d) >= twoPi {
		if anticlockwise {
			return -twoPi
		}
		return twoPi
	}
	if anticlockwise {
		d = -d
	}
	d = math.Mod(d, twoPi)
	if d < 0 {
		d += twoPi
	}
	if anticlockwise {
		return -d
	}
	return d
}

// cubic is one Bézier segment of a flattened arc, starting where the
// previous segment ended.
type cubic struct {
	C1, C2, P gg.Point
}

// arcCubics approximates the arc of radius r around (cx, cy) starting at
// angle a0 and sweeping by sweep radians. Segments span at most a quarter
// turn.
func arcCubics(cx, cy, r, a0, sweep float64) (start gg.Point, segs []cubic) {
	start = gg.Pt(cx+r*math.Cos(a0), cy+r*math.Sin(a0))
	if sweep == 0 {
		return start, nil
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	segs = make([]cubic, 0, n)
	for i := 0; i < n; i++ {
		a1 := a0 + float64(i)*step
		a2 := a1 + step
		segs = append(segs, arcSegment(cx, cy, r, a1, a2))
	}
	return start, segs
}

func arcSegment(cx, cy, r, a1, a2 float64) cubic {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	return cubic{
		C1: gg.Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		C2: gg.Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		P:  gg.Pt(x2, y2),
	}
}
