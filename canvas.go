package shape

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

var (
	sharedFontsOnce sync.Once
	sharedFonts     *FontBook
)

// defaultFontBook returns the font book shared by canvases created without
// WithFontBook.
func defaultFontBook() *FontBook {
	sharedFontsOnce.Do(func() {
		sharedFonts = NewFontBook()
	})
	return sharedFonts
}

// paintState is the part of the canvas state saved by Save.
// gg's Push/Pop only covers the transform, clip and mask.
type paintState struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	alpha     float64
	shadow    Shadow

	font     string
	face     text.Face // resolved lazily from font
	align    TextAlign
	baseline TextBaseline
}

// Canvas is a [Context] that paints into a *gg.Context.
//
// Arcs are flattened to cubic Béziers, the global alpha multiplies the alpha
// of the fill and stroke colours, and labels are drawn with faces from a
// [FontBook]. Shadow settings are kept in the paint state but not rendered:
// gg has no shadow primitive.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc          *gg.Context
	fonts       *FontBook
	defaultFont string

	state paintState
	stack []paintState

	// Current and subpath start points in user space.
	cur, start gg.Point
	hasCur     bool
}

var _ Context = (*Canvas)(nil)

// NewCanvas wraps dc. The initial state matches a fresh HTML canvas: black
// fill and stroke, 1px lines, opaque, no shadow, start/alphabetic text.
func NewCanvas(dc *gg.Context, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fonts := o.fonts
	if fonts == nil {
		fonts = defaultFontBook()
	}
	return &Canvas{
		dc:          dc,
		fonts:       fonts,
		defaultFont: o.defaultFont,
		state: paintState{
			fill:      gg.Black,
			stroke:    gg.Black,
			lineWidth: 1,
			alpha:     1,
			shadow:    Shadow{Color: "#000"},
			font:      o.defaultFont,
			align:     AlignStart,
			baseline:  BaselineAlphabetic,
		},
		stack: make([]paintState, 0, 8),
	}
}

// GG returns the wrapped gg context.
func (c *Canvas) GG() *gg.Context { return c.dc }

// Depth returns the number of unmatched Save calls.
func (c *Canvas) Depth() int { return len(c.stack) }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
}

func (c *Canvas) Transform(m gg.Matrix) { c.dc.Transform(m) }

func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
	c.hasCur = false
}

func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
	c.cur = gg.Pt(x, y)
	c.start = c.cur
	c.hasCur = true
}

// LineTo behaves like MoveTo when there is no current point.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasCur {
		c.MoveTo(x, y)
		return
	}
	c.dc.LineTo(x, y)
	c.cur = gg.Pt(x, y)
}

func (c *Canvas) Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool) {
	sweep := arcSweep(startAngle, endAngle, anticlockwise)
	p0, segs := arcCubics(x, y, r, startAngle, sweep)
	if c.hasCur {
		c.LineTo(p0.X, p0.Y)
	} else {
		c.MoveTo(p0.X, p0.Y)
	}
	for _, s := range segs {
		c.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P.X, s.P.Y)
		c.cur = s.P
	}
}

func (c *Canvas) ClosePath() {
	if !c.hasCur {
		return
	}
	c.dc.ClosePath()
	c.cur = c.start
}

// Fill fills the current path and keeps it for further painting.
func (c *Canvas) Fill() error {
	c.dc.SetFillBrush(gg.Solid(c.withAlpha(c.state.fill)))
	return c.dc.FillPreserve()
}

// Stroke strokes the current path and keeps it for further painting.
func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(gg.Solid(c.withAlpha(c.state.stroke)))
	c.dc.SetLineWidth(c.state.lineWidth)
	return c.dc.StrokePreserve()
}

func (c *Canvas) SetFillStyle(color string) error {
	col, err := ParseColor(color)
	if err != nil {
		return err
	}
	c.state.fill = col
	return nil
}

func (c *Canvas) SetStrokeStyle(color string) error {
	col, err := ParseColor(color)
	if err != nil {
		return err
	}
	c.state.stroke = col
	return nil
}

// SetLineWidth ignores non-positive widths, like a canvas does.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.state.lineWidth = w
	}
}

// SetGlobalAlpha ignores values outside [0, 1].
func (c *Canvas) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		c.state.alpha = a
	}
}

func (c *Canvas) SetShadow(s Shadow) error {
	if s.Color == "" {
		s.Color = "#000"
	}
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	c.state.shadow = s
	return nil
}

// SetFont resolves font eagerly so that bad font strings fail here.
func (c *Canvas) SetFont(font string) error {
	if font == "" {
		font = c.defaultFont
	}
	face, err := c.fonts.Face(font)
	if err != nil {
		return err
	}
	c.state.font = font
	c.state.face = face
	return nil
}

func (c *Canvas) SetTextAlign(a TextAlign) {
	if a != "" {
		c.state.align = a
	}
}

func (c *Canvas) SetTextBaseline(b TextBaseline) {
	if b != "" {
		c.state.baseline = b
	}
}

// FillText draws s with the current font, alignment and fill colour.
func (c *Canvas) FillText(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	face := c.state.face
	if face == nil {
		f, err := c.fonts.Face(c.state.font)
		if err != nil {
			return err
		}
		face = f
		c.state.face = f
	}

	m := face.Metrics()
	x -= face.Advance(s) * c.state.align.factor()
	switch c.state.baseline {
	case BaselineTop, BaselineHanging:
		y += m.Ascent
	case BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case BaselineBottom, BaselineIdeographic:
		y -= m.Descent
	}

	c.dc.SetFont(face)
	c.dc.SetColor(c.withAlpha(c.state.fill).Color())
	c.dc.DrawString(s, x, y)
	return nil
}

func (c *Canvas) withAlpha(col gg.RGBA) gg.RGBA {
	col.A *= c.state.alpha
	return col
}
