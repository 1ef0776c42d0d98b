package shape

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg-shape/internal/cssfont"
)

// FontVariant selects one face of a family.
type FontVariant int

const (
	Regular FontVariant = iota
	Bold
	Italic
	BoldItalic
)

func variantOf(f cssfont.Font) FontVariant {
	switch {
	case f.Weight.Bold() && f.Italic:
		return BoldItalic
	case f.Weight.Bold():
		return Bold
	case f.Italic:
		return Italic
	default:
		return Regular
	}
}

// FontBook resolves CSS font strings to gg text faces.
//
// Families are registered per variant with TTF or OTF data. A missing bold or
// italic variant falls back to the family's regular face. Families that are
// not registered fall back to the book's default family, so labels always
// render with some face. The zero value is not usable; use NewFontBook.
//
// FontBook is safe for concurrent use.
type FontBook struct {
	mu       sync.Mutex
	families map[string]map[FontVariant][]byte
	sources  map[string]*text.FontSource
	faces    map[string]text.Face
	fallback string
}

// NewFontBook returns a font book preloaded with the Go fonts:
// "sans-serif" maps to Go Regular/Bold/Italic and
// "monospace" to Go Mono.
func NewFontBook() *FontBook {
	b := &FontBook{
		families: make(map[string]map[FontVariant][]byte),
		sources:  make(map[string]*text.FontSource),
		faces:    make(map[string]text.Face),
		fallback: "sans-serif",
	}
	b.Register("sans-serif", Regular, goregular.TTF)
	b.Register("sans-serif", Bold, gobold.TTF)
	b.Register("sans-serif", Italic, goitalic.TTF)
	b.Register("sans-serif", BoldItalic, gobolditalic.TTF)
	b.Register("monospace", Regular, gomono.TTF)
	b.Register("monospace", Bold, gomonobold.TTF)
	return b
}

// Register adds font data for a family variant, replacing earlier data.
// The family name is matched case-insensitively.
func (b *FontBook) Register(family string, v FontVariant, data []byte) {
	key, ok := familyKey(family)
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	vs := b.families[key]
	if vs == nil {
		vs = make(map[FontVariant][]byte)
		b.families[key] = vs
	}
	vs[v] = data
	// Drop cached sources and faces so the new data takes effect.
	delete(b.sources, sourceKey(key, v))
	clear(b.faces)
}

// SetFallback sets the family used when none of a font's families is
// registered.
func (b *FontBook) SetFallback(family string) {
	key, ok := familyKey(family)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fallback = key
	clear(b.faces)
}

// Face resolves a CSS font shorthand such as "bold 18px verdana".
// An empty string resolves [DefaultFont].
func (b *FontBook) Face(font string) (text.Face, error) {
	if font == "" {
		font = DefaultFont
	}
	f, err := cssfont.Parse(font)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := f.Key()
	if face, ok := b.faces[key]; ok {
		return face, nil
	}

	family, ok := b.pickFamily(f.Families)
	if !ok {
		if _, has := b.families[b.fallback]; !has {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, font)
		}
		Logger().Warn("shape: font family not registered, using fallback",
			"font", font, "fallback", b.fallback)
		family = b.fallback
	}

	src, err := b.source(family, variantOf(f))
	if err != nil {
		return nil, err
	}
	face := src.Face(f.Size)
	b.faces[key] = face
	return face, nil
}

func (b *FontBook) pickFamily(families []string) (string, bool) {
	for _, fam := range families {
		if _, ok := b.families[fam]; ok {
			return fam, true
		}
	}
	return "", false
}

// source returns the parsed font for a family variant. Caller holds b.mu.
func (b *FontBook) source(family string, v FontVariant) (*text.FontSource, error) {
	vs := b.families[family]
	data, ok := vs[v]
	if !ok {
		v = Regular
		data, ok = vs[Regular]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no regular face", ErrUnknownFamily, family)
		}
	}

	sk := sourceKey(family, v)
	if src, ok := b.sources[sk]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("shape: load font %q: %w", family, err)
	}
	Logger().Debug("shape: font loaded", "family", family, "variant", int(v), "name", src.Name())
	b.sources[sk] = src
	return src, nil
}

// familyKey normalises a single family name the way font strings are parsed.
func familyKey(family string) (string, bool) {
	f, err := cssfont.Parse("1px " + family)
	if err != nil || len(f.Families) != 1 {
		return "", false
	}
	return f.Families[0], true
}

func sourceKey(family string, v FontVariant) string {
	return fmt.Sprintf("%s#%d", family, v)
}
