package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS colour string into a non-premultiplied gg.RGBA.
//
// Supported forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)", "rgba(r, g, b, a)" with 0-255 or percentage channels
//   - "hsl(h, s%, l%)", "hsla(h, s%, l%, a)"
//   - CSS named colours ("red", "steelblue", ...) and "transparent"
//
// Keywords are case-insensitive. Unparseable input returns an error wrapping
// [ErrInvalidColor].
func ParseColor(s string) (gg.RGBA, error) {
	src := strings.ToLower(strings.TrimSpace(s))
	switch {
	case src == "":
		return gg.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case src == "transparent":
		return gg.Transparent, nil
	case src[0] == '#':
		return parseHexColor(s, src)
	case strings.HasPrefix(src, "rgb"):
		return parseRGBFunc(s, src)
	case strings.HasPrefix(src, "hsl"):
		return parseHSLFunc(s, src)
	}
	if c, ok := colornames.Map[src]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) gg.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexColor splits off an optional alpha digit group and hands the RGB
// part to go-colorful, which understands "#rgb" and "#rrggbb".
func parseHexColor(orig, src string) (gg.RGBA, error) {
	digits := src[1:]
	alpha := 1.0
	switch len(digits) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(digits[3:], 16, 8)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = float64(a*17) / 255
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseRGBFunc(orig, src string) (gg.RGBA, error) {
	args, ok := funcArgs(src, "rgb", "rgba")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	var ch [3]float64
	for i := range ch {
		v, err := parseChannel(args[i], 255)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = v
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := parseChannel(args[3], 1)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = a
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parseHSLFunc(orig, src string) (gg.RGBA, error) {
	args, ok := funcArgs(src, "hsl", "hsla")
	if !ok || (len(args) != 3 && len(args) != 4) {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	sat, err := parseChannel(args[1], 1)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	light, err := parseChannel(args[2], 1)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	alpha := 1.0
	if len(args) == 4 {
		if alpha, err = parseChannel(args[3], 1); err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
	}

	h = normalizeHue(h)
	c := colorful.Hsl(h, sat, light).Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// funcArgs extracts the arguments of "name(a, b, c)". Both the short and the
// alpha variant of the function name are accepted with any argument count;
// the caller checks the count.
func funcArgs(src, name, alphaName string) ([]string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(src, alphaName+"("):
		rest = src[len(alphaName)+1:]
	case strings.HasPrefix(src, name+"("):
		rest = src[len(name)+1:]
	default:
		return nil, false
	}
	body, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return nil, false
	}
	body = strings.ReplaceAll(body, "/", ",")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return fields, true
}

// parseChannel parses a number or percentage and scales it into [0, 1].
// Plain numbers are divided by scale.
func parseChannel(s string, scale float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		return clamp01(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / scale), nil
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
