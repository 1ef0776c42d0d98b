// Package scenefile decodes TOML scene descriptions into shape entities.
//
// A scene looks like:
//
//	width = 200
//	height = 200
//	background = "white"
//
//	[[shape]]
//	id = "donut"
//	type = "ring"
//	x = 100
//	y = 100
//	r0 = 30
//	r = 80
//	color = "steelblue"
//	text = "donut"
//	text_position = "inside"
//
//	[shape.highlight]
//	color = "orange"
//
// Unknown keys are reported as errors so that typos do not silently change a
// drawing.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	shape "github.com/gogpu/gg-shape"
)

// Default canvas size for scenes that do not set one.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// ErrUnknownKey is returned when a scene file contains keys that do not map
// to any scene field.
var ErrUnknownKey = errors.New("scenefile: unknown key")

// Scene is a decoded scene file.
type Scene struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background string      `toml:"background"`
	Fonts      []FontSpec  `toml:"font"`
	Shapes     []ShapeSpec `toml:"shape"`

	// dir is the directory font paths are resolved against.
	dir string
}

// FontSpec registers a font file under a family name.
type FontSpec struct {
	Family string `toml:"family"`
	File   string `toml:"file"`
	Bold   bool   `toml:"bold"`
	Italic bool   `toml:"italic"`
}

// ShapeSpec is one [[shape]] table.
type ShapeSpec struct {
	ID        string `toml:"id"`
	Type      string `toml:"type"` // default "ring"
	ZLevel    int    `toml:"zlevel"`
	Invisible bool   `toml:"invisible"`

	// Transform. Rotation is in degrees, anticlockwise on screen; Origin is
	// the pivot for both rotation and scale.
	Position [2]float64 `toml:"position"`
	Rotation float64    `toml:"rotation"`
	Scale    [2]float64 `toml:"scale"`
	Origin   [2]float64 `toml:"origin"`

	StyleSpec
	Highlight *StyleSpec `toml:"highlight"`
}

// StyleSpec holds the style keys shared by a shape and its highlight table.
type StyleSpec struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	R0         float64 `toml:"r0"`
	R          float64 `toml:"r"`
	StartAngle float64 `toml:"start_angle"`
	EndAngle   float64 `toml:"end_angle"`
	Clockwise  bool    `toml:"clockwise"`

	Brush       string   `toml:"brush"`
	Color       string   `toml:"color"`
	StrokeColor string   `toml:"stroke_color"`
	LineWidth   float64  `toml:"line_width"`
	Opacity     *float64 `toml:"opacity"`

	ShadowBlur    float64 `toml:"shadow_blur"`
	ShadowColor   string  `toml:"shadow_color"`
	ShadowOffsetX float64 `toml:"shadow_offset_x"`
	ShadowOffsetY float64 `toml:"shadow_offset_y"`

	Text         string `toml:"text"`
	TextFont     string `toml:"text_font"`
	TextPosition string `toml:"text_position"`
	TextAlign    string `toml:"text_align"`
	TextBaseline string `toml:"text_baseline"`
	TextColor    string `toml:"text_color"`
}

// Style converts the table to a shape style.
func (s *StyleSpec) Style() shape.Style {
	st := shape.Style{
		X:             s.X,
		Y:             s.Y,
		R0:            s.R0,
		R:             s.R,
		StartAngle:    s.StartAngle,
		EndAngle:      s.EndAngle,
		Clockwise:     s.Clockwise,
		BrushType:     shape.BrushType(s.Brush),
		Color:         s.Color,
		StrokeColor:   s.StrokeColor,
		LineWidth:     s.LineWidth,
		ShadowBlur:    s.ShadowBlur,
		ShadowColor:   s.ShadowColor,
		ShadowOffsetX: s.ShadowOffsetX,
		ShadowOffsetY: s.ShadowOffsetY,
		Text:          s.Text,
		TextFont:      s.TextFont,
		TextPosition:  shape.TextPosition(s.TextPosition),
		TextAlign:     shape.TextAlign(s.TextAlign),
		TextBaseline:  shape.TextBaseline(s.TextBaseline),
		TextColor:     s.TextColor,
	}
	if s.Opacity != nil {
		st.Opacity = shape.Float(*s.Opacity)
	}
	return st
}

// Decode reads a scene from r. Missing sizes are replaced by the defaults.
func Decode(r io.Reader) (*Scene, error) {
	var sc Scene
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if sc.Width <= 0 {
		sc.Width = DefaultWidth
	}
	if sc.Height <= 0 {
		sc.Height = DefaultHeight
	}
	for i := range sc.Shapes {
		if err := sc.Shapes[i].validate(); err != nil {
			return nil, fmt.Errorf("scenefile: shape %d: %w", i, err)
		}
	}
	return &sc, nil
}

// Load reads and decodes the scene file at path. Font files are resolved
// relative to the scene's directory.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

func (s *ShapeSpec) validate() error {
	if s.Type == "" {
		s.Type = "ring"
	}
	if _, err := shape.Lookup(s.Type); err != nil {
		return err
	}
	switch shape.BrushType(s.Brush) {
	case "", shape.BrushFill, shape.BrushStroke, shape.BrushBoth:
	default:
		return fmt.Errorf("unknown brush %q", s.Brush)
	}
	return nil
}

// Entities returns the scene's shapes as entities, ordered by ZLevel. Shapes
// on the same level keep their file order.
func (sc *Scene) Entities() []*shape.Entity {
	out := make([]*shape.Entity, 0, len(sc.Shapes))
	for i := range sc.Shapes {
		out = append(out, sc.Shapes[i].Entity())
	}
	slices.SortStableFunc(out, func(a, b *shape.Entity) int {
		return a.ZLevel - b.ZLevel
	})
	return out
}

// Entity converts the table to an entity.
func (s *ShapeSpec) Entity() *shape.Entity {
	origin := gg.Pt(s.Origin[0], s.Origin[1])
	e := &shape.Entity{
		ID:             s.ID,
		Type:           s.Type,
		ZLevel:         s.ZLevel,
		Invisible:      s.Invisible,
		Style:          s.Style(),
		Position:       gg.Pt(s.Position[0], s.Position[1]),
		Rotation:       s.Rotation * math.Pi / 180,
		RotationOrigin: origin,
		Scale:          gg.Pt(s.Scale[0], s.Scale[1]),
		ScaleOrigin:    origin,
	}
	if s.Highlight != nil {
		hl := s.Highlight.Style()
		e.HighlightStyle = &hl
	}
	return e
}

// FontBook returns a font book with the scene's fonts registered on top of
// the built-in Go fonts.
func (sc *Scene) FontBook() (*shape.FontBook, error) {
	book := shape.NewFontBook()
	for _, fs := range sc.Fonts {
		path := fs.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(sc.dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scenefile: font %q: %w", fs.Family, err)
		}
		v := shape.Regular
		switch {
		case fs.Bold && fs.Italic:
			v = shape.BoldItalic
		case fs.Bold:
			v = shape.Bold
		case fs.Italic:
			v = shape.Italic
		}
		book.Register(fs.Family, v, data)
	}
	return book, nil
}
