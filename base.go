package shape

import "github.com/gogpu/gg"

// textGap is the distance between a shape's bounding box and an outside label.
const textGap = 10

// Base carries the behaviour shared by every shape: style merging, context
// setup, transform computation and label drawing. Shapes embed it and
// override what they paint differently. Shapes whose paint pass is a single
// path filled and/or stroked can delegate Brush to [Base.PaintOutline].
type Base struct{}

// HighlightStyle returns s with hl merged over it. See [Style.Merge].
func (Base) HighlightStyle(s Style, hl *Style) Style {
	return s.Merge(hl)
}

// UpdateTransform returns the entity's current transform.
func (Base) UpdateTransform(e *Entity) gg.Matrix {
	return e.Matrix()
}

// SetContext applies the paint settings of s that are set: fill and stroke
// colours, global alpha, line width and, when ShadowBlur is positive, the
// shadow. Colour errors from ctx are returned unchanged.
func (Base) SetContext(ctx Context, s *Style) error {
	if s.Color != "" {
		if err := ctx.SetFillStyle(s.Color); err != nil {
			return err
		}
	}
	if s.StrokeColor != "" {
		if err := ctx.SetStrokeStyle(s.StrokeColor); err != nil {
			return err
		}
	}
	if s.Opacity != nil {
		ctx.SetGlobalAlpha(*s.Opacity)
	}
	if s.LineWidth > 0 {
		ctx.SetLineWidth(s.LineWidth)
	}
	if s.ShadowBlur > 0 {
		color := s.ShadowColor
		if color == "" {
			color = "#000"
		}
		return ctx.SetShadow(Shadow{
			Blur:    s.ShadowBlur,
			Color:   color,
			OffsetX: s.ShadowOffsetX,
			OffsetY: s.ShadowOffsetY,
		})
	}
	return nil
}

// DrawText draws s.Text, if any, anchored against rect according to
// s.TextPosition. Explicit TextAlign and TextBaseline override the
// position's defaults. s.TextColor is used as is; an empty colour keeps the
// current fill style. See [Base.LabelColor] for the default.
func (Base) DrawText(ctx Context, s *Style, rect Rect) error {
	if s.Text == "" {
		return nil
	}

	x, y, align, baseline := textAnchor(s.TextPosition, rect)
	if s.TextAlign != "" {
		align = s.TextAlign
	}
	if s.TextBaseline != "" {
		baseline = s.TextBaseline
	}

	if s.TextColor != "" {
		if err := ctx.SetFillStyle(s.TextColor); err != nil {
			return err
		}
	}

	font := s.TextFont
	if font == "" {
		font = DefaultFont
	}
	if err := ctx.SetFont(font); err != nil {
		return err
	}
	ctx.SetTextAlign(align)
	ctx.SetTextBaseline(baseline)
	return ctx.FillText(s.Text, x, y)
}

// textAnchor returns the label anchor and default alignment for a position.
func textAnchor(pos TextPosition, r Rect) (x, y float64, align TextAlign, baseline TextBaseline) {
	cx, cy := r.Center()
	switch pos {
	case TextInside:
		return cx, cy, AlignCenter, BaselineMiddle
	case TextBottom:
		return cx, r.Y + r.Height + textGap, AlignCenter, BaselineTop
	case TextLeft:
		return r.X - textGap, cy, AlignEnd, BaselineMiddle
	case TextRight:
		return r.X + r.Width + textGap, cy, AlignStart, BaselineMiddle
	default: // top, outside
		return cx, r.Y - textGap, AlignCenter, BaselineBottom
	}
}

// insideTextColor is the default colour of labels drawn over the shape.
const insideTextColor = "#fff"

// LabelColor resolves the colour of the label in the working style s: an
// explicit s.TextColor, else white for inside labels, else base's fill
// colour, else its stroke colour. base is the entity's own style, so a
// highlight never recolours an outside label.
func (Base) LabelColor(s, base *Style) string {
	switch {
	case s.TextColor != "":
		return s.TextColor
	case s.TextPosition == TextInside:
		return insideTextColor
	case base.Color != "":
		return base.Color
	default:
		return base.StrokeColor
	}
}

// Prepare returns the working style for one brush pass: a copy of e.Style,
// with the highlight style merged in when requested.
func (b Base) Prepare(e *Entity, highlight bool) Style {
	style := e.Style
	if highlight {
		style = b.HighlightStyle(style, e.HighlightStyle)
	}
	return style
}

// ApplyTransform multiplies the entity transform into ctx unless it is the
// identity.
func (b Base) ApplyTransform(ctx Context, e *Entity) {
	if m := b.UpdateTransform(e); !m.IsIdentity() {
		ctx.Transform(m)
	}
}

// Outline is the geometry [Base.PaintOutline] needs.
type Outline interface {
	PathBuilder
	Rect(s *Style) Rect
}

// PaintOutline is the default paint pass: build the path once, then fill
// and/or stroke it and draw the label. The context state is restored on
// return, errors included.
func (b Base) PaintOutline(ctx Context, e *Entity, highlight bool, o Outline) error {
	style := b.Prepare(e, highlight)

	ctx.Save()
	defer ctx.Restore()

	if err := b.SetContext(ctx, &style); err != nil {
		return err
	}
	b.ApplyTransform(ctx, e)

	ctx.BeginPath()
	o.BuildPath(ctx, &style)
	ctx.ClosePath()

	bt := style.brushType()
	if bt.fills() {
		if err := ctx.Fill(); err != nil {
			return err
		}
	}
	if bt.strokes() {
		if err := ctx.Stroke(); err != nil {
			return err
		}
	}

	if style.Text != "" {
		style.TextColor = b.LabelColor(&style, &e.Style)
		return b.DrawText(ctx, &style, o.Rect(&style))
	}
	return nil
}
