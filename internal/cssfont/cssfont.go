// Package cssfont parses the subset of the CSS font shorthand used by shape
// labels, e.g. "bold 18px verdana" or "italic 600 12pt 'Go Mono', monospace".
package cssfont

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// ErrSyntax is returned when a font string has no recognisable size or family.
var ErrSyntax = errors.New("cssfont: syntax error")

// Weight is a numeric CSS font weight (100..900).
type Weight int

// Common weights.
const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// Bold reports whether w should be rendered with a bold face.
func (w Weight) Bold() bool { return w >= 600 }

// Font is a parsed CSS font shorthand.
type Font struct {
	Italic bool
	Weight Weight
	// Size is the font size in pixels.
	Size float64
	// Families lists the case-folded family names in order of preference.
	Families []string
}

// Key returns a stable cache key for the font.
func (f Font) Key() string {
	style := "normal"
	if f.Italic {
		style = "italic"
	}
	return fmt.Sprintf("%s/%d/%g/%s", style, f.Weight, f.Size, strings.Join(f.Families, ","))
}

// Parse parses a CSS font shorthand: optional style, variant and weight
// keywords, a mandatory size (px, pt or em relative to 16px, with an optional
// "/line-height" suffix) and a comma-separated family list.
func Parse(s string) (Font, error) {
	f := Font{Weight: WeightNormal}
	fields := strings.Fields(s)
	i := 0
	for ; i < len(fields); i++ {
		tok := strings.ToLower(fields[i])
		switch tok {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		case "bold", "bolder":
			f.Weight = WeightBold
			continue
		case "lighter":
			f.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(tok); err == nil && w >= 100 && w <= 900 && w%100 == 0 {
			f.Weight = Weight(w)
			continue
		}
		size, ok := parseSize(tok)
		if !ok {
			return Font{}, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, fields[i], s)
		}
		f.Size = size
		i++
		break
	}
	if f.Size == 0 {
		return Font{}, fmt.Errorf("%w: missing size in %q", ErrSyntax, s)
	}

	folder := cases.Fold()
	rest := strings.Join(fields[i:], " ")
	for _, fam := range strings.Split(rest, ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam == "" {
			continue
		}
		f.Families = append(f.Families, folder.String(fam))
	}
	if len(f.Families) == 0 {
		return Font{}, fmt.Errorf("%w: missing family in %q", ErrSyntax, s)
	}
	return f, nil
}

func parseSize(tok string) (float64, bool) {
	tok, _, _ = strings.Cut(tok, "/")
	units := []struct {
		suffix   string
		mul, div float64
	}{
		{"px", 1, 1},
		{"pt", 4, 3},
		{"rem", 16, 1},
		{"em", 16, 1},
	}
	for _, u := range units {
		if num, ok := strings.CutSuffix(tok, u.suffix); ok {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil || v <= 0 {
				return 0, false
			}
			return v * u.mul / u.div, true
		}
	}
	return 0, false
}
