package shape

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetContext_Unset(t *testing.T) {
	rec := NewRecorder()
	if err := (Base{}).SetContext(rec, &Style{R: 5}); err != nil {
		t.Fatalf("SetContext: %v", err)
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("unset style produced calls: %v", rec.Calls())
	}
}

func TestSetContext_ZeroOpacity(t *testing.T) {
	rec := NewRecorder()
	if err := (Base{}).SetContext(rec, &Style{Opacity: Float(0), ShadowColor: "red"}); err != nil {
		t.Fatalf("SetContext: %v", err)
	}
	want := []Call{{Op: OpSetGlobalAlpha, Args: []float64{0}}}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestSetContext_Errors(t *testing.T) {
	tests := []struct {
		name  string
		style Style
	}{
		{"fill", Style{Color: "#12"}},
		{"stroke", Style{StrokeColor: "rgb(1,2)"}},
		{"shadow", Style{ShadowBlur: 1, ShadowColor: "mauvish"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (Base{}).SetContext(NewRecorder(), &tt.style)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("SetContext error = %v, want ErrInvalidColor", err)
			}
		})
	}
}

func TestTextAnchor(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 20, Height: 10}
	type anchor struct {
		X, Y     float64
		Align    TextAlign
		Baseline TextBaseline
	}
	tests := []struct {
		pos  TextPosition
		want anchor
	}{
		{TextInside, anchor{10, 5, AlignCenter, BaselineMiddle}},
		{TextTop, anchor{10, -10, AlignCenter, BaselineBottom}},
		{TextOutside, anchor{10, -10, AlignCenter, BaselineBottom}},
		{"", anchor{10, -10, AlignCenter, BaselineBottom}},
		{TextBottom, anchor{10, 20, AlignCenter, BaselineTop}},
		{TextLeft, anchor{-10, 5, AlignEnd, BaselineMiddle}},
		{TextRight, anchor{30, 5, AlignStart, BaselineMiddle}},
	}
	for _, tt := range tests {
		var got anchor
		got.X, got.Y, got.Align, got.Baseline = textAnchor(tt.pos, r)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("textAnchor(%q) mismatch (-want +got):\n%s", tt.pos, diff)
		}
	}
}

func TestLabelColor(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		base  Style
		want  string
	}{
		{"explicit", Style{TextColor: "blue"}, Style{Color: "red", StrokeColor: "green"}, "blue"},
		{"explicit inside", Style{TextColor: "red", TextPosition: TextInside}, Style{Color: "red"}, "red"},
		{"inside", Style{TextPosition: TextInside}, Style{Color: "red"}, "#fff"},
		{"inside stroke", Style{TextPosition: TextInside, BrushType: BrushStroke}, Style{StrokeColor: "green"}, "#fff"},
		{"fill", Style{Color: "blue"}, Style{Color: "red", StrokeColor: "green"}, "red"},
		{"stroke", Style{}, Style{StrokeColor: "green"}, "green"},
		{"unset", Style{}, Style{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Base{}).LabelColor(&tt.style, &tt.base); got != tt.want {
				t.Errorf("LabelColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawText_ExplicitColor(t *testing.T) {
	rec := NewRecorder()
	s := &Style{Text: "x", Color: "#f00", TextColor: "#f00", TextPosition: TextInside}
	if err := (Base{}).DrawText(rec, s, Rect{Width: 4, Height: 4}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	want := []Call{{Op: OpSetFillStyle, Str: "#f00"}}
	if diff := cmp.Diff(want, rec.Calls()[:1]); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestDrawText_Empty(t *testing.T) {
	rec := NewRecorder()
	if err := (Base{}).DrawText(rec, &Style{}, Rect{}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("empty label produced calls: %v", rec.Calls())
	}
}

func TestDrawText_NoColorKeepsFillStyle(t *testing.T) {
	rec := NewRecorder()
	if err := (Base{}).DrawText(rec, &Style{Text: "x"}, Rect{Width: 4, Height: 4}); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if rec.Count(OpSetFillStyle) != 0 {
		t.Error("DrawText set a fill style without a colour")
	}
	want := []Op{OpSetFont, OpSetTextAlign, OpSetTextBaseline, OpFillText}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}
}
