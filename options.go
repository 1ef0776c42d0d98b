package shape

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	fonts := shape.NewFontBook()
//	fonts.Register("verdana", shape.Regular, verdanaTTF)
//	cv := shape.NewCanvas(dc, shape.WithFontBook(fonts))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	fonts       *FontBook
	defaultFont string
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		fonts:       nil, // shared package font book
		defaultFont: DefaultFont,
	}
}

// WithFontBook sets the font book used to resolve label fonts.
// By default all canvases share one book holding the Go fonts.
func WithFontBook(b *FontBook) CanvasOption {
	return func(o *canvasOptions) {
		if b != nil {
			o.fonts = b
		}
	}
}

// WithDefaultFont sets the font used before SetFont is called and for
// empty font strings.
func WithDefaultFont(font string) CanvasOption {
	return func(o *canvasOptions) {
		if font != "" {
			o.defaultFont = font
		}
	}
}
