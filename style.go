package shape

// BrushType selects how a shape is painted.
type BrushType string

const (
	BrushFill   BrushType = "fill"
	BrushStroke BrushType = "stroke"
	BrushBoth   BrushType = "both"
)

// fills reports whether the interior is painted. The zero value fills.
func (b BrushType) fills() bool {
	return b == "" || b == BrushFill || b == BrushBoth
}

// strokes reports whether the outline is painted.
func (b BrushType) strokes() bool {
	return b == BrushStroke || b == BrushBoth
}

// TextPosition places a label relative to the shape's bounding box.
type TextPosition string

const (
	TextInside  TextPosition = "inside"
	TextOutside TextPosition = "outside" // same as TextTop
	TextTop     TextPosition = "top"
	TextBottom  TextPosition = "bottom"
	TextLeft    TextPosition = "left"
	TextRight   TextPosition = "right"
)

// Style is the paint configuration of an entity.
//
// Zero values mean "unset". Geometry fields are read as-is; everything else
// falls back to the documented default or to whatever the drawing context
// already holds.
type Style struct {
	// Centre and radii. Rings need R0 <= R for a visible result.
	X, Y  float64
	R0, R float64

	// Sector sweep in degrees, anticlockwise unless Clockwise is set.
	StartAngle, EndAngle float64
	Clockwise            bool

	// BrushType defaults to BrushFill.
	BrushType BrushType

	// Color and StrokeColor are CSS colour strings. Default black.
	Color       string
	StrokeColor string
	// LineWidth defaults to 1.
	LineWidth float64
	// Opacity is the global alpha in [0, 1]. nil means 1.
	Opacity *float64

	// Shadow settings are validated and passed to the context. [Canvas]
	// keeps them in its paint state but does not draw shadows, since gg has
	// no blur primitive; [Recorder] records them.
	ShadowBlur    float64
	ShadowColor   string // default "#000"
	ShadowOffsetX float64
	ShadowOffsetY float64

	Text string
	// TextFont is a CSS font shorthand, default DefaultFont.
	TextFont     string
	TextPosition TextPosition // default TextTop
	TextAlign    TextAlign    // default depends on TextPosition
	TextBaseline TextBaseline // default depends on TextPosition
	TextColor    string       // default white inside, else the base fill or stroke colour
}

// Float returns a pointer to v, for optional fields such as Style.Opacity.
func Float(v float64) *float64 { return &v }

// brushType returns the effective brush type.
func (s *Style) brushType() BrushType {
	if s.BrushType == "" {
		return BrushFill
	}
	return s.BrushType
}

// Merge returns a copy of s with every set field of hl applied over it.
// A nil or empty hl leaves the copy equal to s.
//
// A field counts as set when it is non-zero; Opacity when non-nil and
// Clockwise when true. A highlight therefore cannot reset a field to zero,
// except Opacity.
func (s Style) Merge(hl *Style) Style {
	if hl == nil {
		return s
	}
	out := s
	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setS := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setF(&out.X, hl.X)
	setF(&out.Y, hl.Y)
	setF(&out.R0, hl.R0)
	setF(&out.R, hl.R)
	setF(&out.StartAngle, hl.StartAngle)
	setF(&out.EndAngle, hl.EndAngle)
	if hl.Clockwise {
		out.Clockwise = true
	}
	if hl.BrushType != "" {
		out.BrushType = hl.BrushType
	}
	setS(&out.Color, hl.Color)
	setS(&out.StrokeColor, hl.StrokeColor)
	setF(&out.LineWidth, hl.LineWidth)
	if hl.Opacity != nil {
		out.Opacity = Float(*hl.Opacity)
	}
	setF(&out.ShadowBlur, hl.ShadowBlur)
	setS(&out.ShadowColor, hl.ShadowColor)
	setF(&out.ShadowOffsetX, hl.ShadowOffsetX)
	setF(&out.ShadowOffsetY, hl.ShadowOffsetY)
	setS(&out.Text, hl.Text)
	setS(&out.TextFont, hl.TextFont)
	if hl.TextPosition != "" {
		out.TextPosition = hl.TextPosition
	}
	if hl.TextAlign != "" {
		out.TextAlign = hl.TextAlign
	}
	if hl.TextBaseline != "" {
		out.TextBaseline = hl.TextBaseline
	}
	setS(&out.TextColor, hl.TextColor)
	return out
}
