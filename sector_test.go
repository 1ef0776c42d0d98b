package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSector_BuildPath(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  []Call
	}{
		{
			name:  "quarter pie",
			style: Style{R: 10, StartAngle: 0, EndAngle: 90},
			want: []Call{
				{Op: OpMoveTo, Args: []float64{0, 0}},
				{Op: OpLineTo, Args: []float64{10, 0}},
				{Op: OpArc, Args: []float64{0, 0, 10, twoPi, 1.5 * math.Pi}, Anticlockwise: true},
				{Op: OpLineTo, Args: []float64{0, 0}},
			},
		},
		{
			name:  "annular quarter",
			style: Style{X: 5, Y: 5, R0: 2, R: 4, StartAngle: 90, EndAngle: 180},
			want: []Call{
				{Op: OpMoveTo, Args: []float64{5, 3}},
				{Op: OpLineTo, Args: []float64{5, 1}},
				{Op: OpArc, Args: []float64{5, 5, 4, 1.5 * math.Pi, math.Pi}, Anticlockwise: true},
				{Op: OpLineTo, Args: []float64{3, 5}},
				{Op: OpArc, Args: []float64{5, 5, 2, math.Pi, 1.5 * math.Pi}},
			},
		},
		{
			name:  "clockwise",
			style: Style{R: 10, StartAngle: 0, EndAngle: 90, Clockwise: true},
			want: []Call{
				{Op: OpMoveTo, Args: []float64{0, 0}},
				{Op: OpLineTo, Args: []float64{10, 0}},
				{Op: OpArc, Args: []float64{0, 0, 10, twoPi, 1.5 * math.Pi}},
				{Op: OpLineTo, Args: []float64{0, 0}},
			},
		},
		{
			name:  "full sweep is exact",
			style: Style{R0: 1, R: 2, StartAngle: 30, EndAngle: 390},
			want: []Call{
				{Op: OpMoveTo, Args: []float64{math.Cos(math.Pi / 6), -0.5}},
				{Op: OpLineTo, Args: []float64{2 * math.Cos(math.Pi/6), -1}},
				{Op: OpArc, Args: []float64{0, 0, 2, twoPi - math.Pi/6, -math.Pi / 6}, Anticlockwise: true},
				{Op: OpLineTo, Args: []float64{math.Cos(math.Pi / 6), -0.5}},
				{Op: OpArc, Args: []float64{0, 0, 1, -math.Pi / 6, twoPi - math.Pi/6}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			NewSector().BuildPath(rec, &tt.style)
			if diff := cmp.Diff(tt.want, rec.Calls(), approx); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSector_Rect(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  Rect
	}{
		{"quarter pie", Style{R: 10, StartAngle: 0, EndAngle: 90}, Rect{X: 0, Y: -10, Width: 10, Height: 10}},
		{"half", Style{X: 10, Y: 10, R: 5, StartAngle: 0, EndAngle: 180}, Rect{X: 5, Y: 5, Width: 10, Height: 5}},
		{"annular quarter", Style{R0: 5, R: 10, StartAngle: 0, EndAngle: 90}, Rect{X: 0, Y: -10, Width: 10, Height: 10}},
		{"full", Style{X: 1, Y: 1, R0: 1, R: 3, StartAngle: 0, EndAngle: 360}, Rect{X: -2, Y: -2, Width: 6, Height: 6}},
		{"clockwise three quarters", Style{R: 10, StartAngle: 0, EndAngle: 90, Clockwise: true}, Rect{X: -10, Y: -10, Width: 20, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSector().Rect(&tt.style)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSector_Contains(t *testing.T) {
	pie := &Style{R: 10, StartAngle: 0, EndAngle: 90}
	cw := &Style{R: 10, StartAngle: 0, EndAngle: 90, Clockwise: true}
	annular := &Style{R0: 5, R: 10, StartAngle: 0, EndAngle: 90}

	tests := []struct {
		name string
		s    *Style
		x, y float64
		want bool
	}{
		{"pie centre", pie, 0, 0, true},
		{"pie inside", pie, 5, -5, true},
		{"pie below axis", pie, 5, 5, false},
		{"pie beyond radius", pie, 20, 0, false},
		{"clockwise other side", cw, 5, 5, true},
		{"clockwise excluded", cw, 5, -5, false},
		{"annular hole", annular, 2, -2, false},
		{"annular band", annular, 5, -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSector().Contains(tt.s, tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSector_BrushBoth(t *testing.T) {
	e := &Entity{Style: Style{R: 10, EndAngle: 45, BrushType: BrushBoth, Text: "s"}}
	rec := NewRecorder()
	if err := NewSector().Brush(rec, e, false); err != nil {
		t.Fatalf("Brush: %v", err)
	}
	if rec.Count(OpFill) != 1 || rec.Count(OpStroke) != 1 || rec.Count(OpFillText) != 1 {
		t.Errorf("unexpected paint calls: %v", rec.Ops())
	}
	if rec.Depth() != 0 {
		t.Errorf("Depth() = %d", rec.Depth())
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{725, 5},
	}
	for _, tt := range tests {
		if got := wrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
