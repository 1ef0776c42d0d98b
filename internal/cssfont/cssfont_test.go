package cssfont

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{
			in:   "12px sans-serif",
			want: Font{Weight: WeightNormal, Size: 12, Families: []string{"sans-serif"}},
		},
		{
			in:   "bold 18px verdana",
			want: Font{Weight: WeightBold, Size: 18, Families: []string{"verdana"}},
		},
		{
			in:   "italic 600 12pt 'Go Mono', monospace",
			want: Font{Italic: true, Weight: 600, Size: 16, Families: []string{"go mono", "monospace"}},
		},
		{
			in:   "normal normal 1em/1.5 \"Microsoft YaHei\"",
			want: Font{Weight: WeightNormal, Size: 16, Families: []string{"microsoft yahei"}},
		},
		{
			in:   "oblique lighter 2rem Arial",
			want: Font{Italic: true, Weight: 300, Size: 32, Families: []string{"arial"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "bold", "12px", "bold huge arial", "-3px arial", "12px ,"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", in, err)
		}
	}
}

func TestWeightBold(t *testing.T) {
	if WeightNormal.Bold() {
		t.Error("400 should not be bold")
	}
	if !Weight(600).Bold() || !WeightBold.Bold() {
		t.Error("600 and 700 should be bold")
	}
}

func TestFontKey(t *testing.T) {
	a, _ := Parse("bold 12px Arial")
	b, _ := Parse("700 12px arial")
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	c, _ := Parse("italic 700 12px arial")
	if a.Key() == c.Key() {
		t.Error("italic font should have a different key")
	}
}
