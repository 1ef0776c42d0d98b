package shape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	shape "github.com/gogpu/gg-shape"
)

// square is a shape defined outside the package on top of Base.
type square struct {
	shape.Base
}

func (*square) Type() string { return "square" }

func (*square) BuildPath(ctx shape.Context, s *shape.Style) {
	ctx.MoveTo(s.X-s.R, s.Y-s.R)
	ctx.LineTo(s.X+s.R, s.Y-s.R)
	ctx.LineTo(s.X+s.R, s.Y+s.R)
	ctx.LineTo(s.X-s.R, s.Y+s.R)
}

func (*square) Rect(s *shape.Style) shape.Rect {
	return shape.Rect{X: s.X - s.R, Y: s.Y - s.R, Width: 2 * s.R, Height: 2 * s.R}
}

func (q *square) Brush(ctx shape.Context, e *shape.Entity, highlight bool) error {
	return q.PaintOutline(ctx, e, highlight, q)
}

func TestPaintOutline_CustomShape(t *testing.T) {
	e := &shape.Entity{
		Type: "square",
		Style: shape.Style{
			X: 10, Y: 10, R: 5,
			BrushType:    shape.BrushBoth,
			Color:        "#f00",
			Text:         "q",
			TextPosition: shape.TextInside,
		},
		HighlightStyle: &shape.Style{Color: "#00f"},
	}

	rec := shape.NewRecorder()
	if err := (&square{}).Brush(rec, e, true); err != nil {
		t.Fatalf("Brush: %v", err)
	}

	want := []shape.Op{
		shape.OpSave,
		shape.OpSetFillStyle,
		shape.OpBeginPath,
		shape.OpMoveTo, shape.OpLineTo, shape.OpLineTo, shape.OpLineTo,
		shape.OpClosePath,
		shape.OpFill,
		shape.OpStroke,
		shape.OpSetFillStyle,
		shape.OpSetFont,
		shape.OpSetTextAlign,
		shape.OpSetTextBaseline,
		shape.OpFillText,
		shape.OpRestore,
	}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}

	var fills []string
	for _, c := range rec.Calls() {
		if c.Op == shape.OpSetFillStyle {
			fills = append(fills, c.Str)
		}
	}
	if diff := cmp.Diff([]string{"#00f", "#fff"}, fills); diff != "" {
		t.Errorf("fill styles (-want +got):\n%s", diff)
	}
}

func TestPaintOutline_Registered(t *testing.T) {
	reg := shape.NewRegistry()
	reg.Register(&square{})

	rec := shape.NewRecorder()
	e := &shape.Entity{Type: "square", Style: shape.Style{R: 2}}
	if err := reg.Draw(rec, e, false); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if rec.Count(shape.OpFill) != 1 || rec.Depth() != 0 {
		t.Errorf("fill = %d, depth = %d", rec.Count(shape.OpFill), rec.Depth())
	}
}
