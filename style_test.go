package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStyleMerge_Empty(t *testing.T) {
	base := Style{X: 1, Y: 2, R0: 3, R: 4, Color: "#f00", Opacity: Float(0.5), Text: "a"}
	for _, hl := range []*Style{nil, {}} {
		got := base.Merge(hl)
		if diff := cmp.Diff(base, got); diff != "" {
			t.Errorf("Merge(%v) changed the style (-want +got):\n%s", hl, diff)
		}
	}
}

func TestStyleMerge_Overrides(t *testing.T) {
	base := Style{
		X: 1, Y: 2, R0: 3, R: 4,
		BrushType:   BrushStroke,
		Color:       "#f00",
		StrokeColor: "#00f",
		LineWidth:   2,
		Opacity:     Float(1),
		Text:        "label",
	}
	hl := &Style{
		R:         10,
		BrushType: BrushBoth,
		Color:     "yellow",
		Opacity:   Float(0),
		TextColor: "#fff",
	}
	got := base.Merge(hl)
	want := Style{
		X: 1, Y: 2, R0: 3, R: 10,
		BrushType:   BrushBoth,
		Color:       "yellow",
		StrokeColor: "#00f",
		LineWidth:   2,
		Opacity:     Float(0),
		Text:        "label",
		TextColor:   "#fff",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleMerge_DoesNotAliasOpacity(t *testing.T) {
	hl := &Style{Opacity: Float(0.3)}
	got := Style{}.Merge(hl)
	*got.Opacity = 0.9
	if *hl.Opacity != 0.3 {
		t.Errorf("highlight opacity mutated to %v", *hl.Opacity)
	}
}

func TestBrushType(t *testing.T) {
	tests := []struct {
		b               BrushType
		fills, strokes  bool
		effectiveString BrushType
	}{
		{"", true, false, BrushFill},
		{BrushFill, true, false, BrushFill},
		{BrushStroke, false, true, BrushStroke},
		{BrushBoth, true, true, BrushBoth},
	}
	for _, tt := range tests {
		if got := tt.b.fills(); got != tt.fills {
			t.Errorf("%q.fills() = %v, want %v", tt.b, got, tt.fills)
		}
		if got := tt.b.strokes(); got != tt.strokes {
			t.Errorf("%q.strokes() = %v, want %v", tt.b, got, tt.strokes)
		}
		s := Style{BrushType: tt.b}
		if got := s.brushType(); got != tt.effectiveString {
			t.Errorf("brushType() = %q, want %q", got, tt.effectiveString)
		}
	}
}
