package shape

import "github.com/gogpu/gg"

// Context is the canvas-like drawing surface shapes paint into.
//
// The method set follows the HTML canvas 2D context: path construction is
// separate from painting, Fill and Stroke paint the current path without
// clearing it, and Save/Restore push and pop the complete paint state
// (transform, colours, line width, alpha, shadow, font, text alignment).
//
// Colour and font arguments are CSS strings; implementations report strings
// they cannot interpret as errors.
//
// A Context is owned by a single painter at a time and is not safe for
// concurrent use.
type Context interface {
	// Save pushes the current paint state.
	Save()
	// Restore pops the last saved paint state. Extra calls are ignored.
	Restore()
	// Transform multiplies the current transformation by m.
	Transform(m gg.Matrix)

	// BeginPath discards the current path.
	BeginPath()
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	// LineTo adds a straight segment to (x, y).
	LineTo(x, y float64)
	// Arc adds a circular arc centred on (x, y), connected to the current
	// point by a straight line. Angles are in radians measured from the
	// positive x axis towards positive y.
	Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool)
	// ClosePath closes the current subpath.
	ClosePath()

	// Fill fills the current path with the fill style.
	Fill() error
	// Stroke strokes the current path with the stroke style and line width.
	Stroke() error

	SetFillStyle(color string) error
	SetStrokeStyle(color string) error
	SetLineWidth(w float64)
	SetGlobalAlpha(a float64)
	SetShadow(s Shadow) error

	// SetFont sets the label font from a CSS font shorthand.
	SetFont(font string) error
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	// FillText draws s anchored at (x, y) using the fill style.
	FillText(s string, x, y float64) error
}

// Shadow describes a drop shadow.
type Shadow struct {
	Blur    float64
	Color   string
	OffsetX float64
	OffsetY float64
}

// TextAlign is the horizontal alignment of a label relative to its anchor.
type TextAlign string

const (
	AlignStart  TextAlign = "start"
	AlignEnd    TextAlign = "end"
	AlignLeft   TextAlign = "left"
	AlignRight  TextAlign = "right"
	AlignCenter TextAlign = "center"
)

// factor returns the fraction of the text width that lies left of the anchor.
// Start and end assume left-to-right text.
func (a TextAlign) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight, AlignEnd:
		return 1
	default:
		return 0
	}
}

// TextBaseline is the vertical alignment of a label relative to its anchor.
type TextBaseline string

const (
	BaselineTop         TextBaseline = "top"
	BaselineHanging     TextBaseline = "hanging"
	BaselineMiddle      TextBaseline = "middle"
	BaselineAlphabetic  TextBaseline = "alphabetic"
	BaselineIdeographic TextBaseline = "ideographic"
	BaselineBottom      TextBaseline = "bottom"
)

// DefaultFont is the label font used when a style does not name one.
const DefaultFont = "12px sans-serif"
