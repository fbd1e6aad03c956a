// Package typeface is the default font-metrics backend for graphic.
//
// It serves a small, hermetic set of families built from the Go fonts
// embedded in golang.org/x/image/font/gofont, so no operating-system font
// lookup is needed. Measurement uses HarfBuzz shaping via
// go-text/typesetting; rasterization-oriented callers can obtain x/image
// font faces for the same data via [Face].
//
// Importing the package registers the backend:
//
//	import _ "github.com/phanxgames/graphic/typeface"
package typeface

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/phanxgames/graphic"
)

// Style identifies a variation within a font family.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
)

// variant is one style of a family, parsed once for both consumers:
// the typesetting Font for shaping/measurement and the opentype Font for
// x/image rasterization.
type variant struct {
	data   []byte
	shaped *font.Font
	sfnt   *opentype.Font
}

// Family is a named collection of style variations. It implements
// graphic.FamilyHandle; measurement always uses the Regular style.
type Family struct {
	name   string
	styles map[Style]*variant
}

// Name returns the family name.
func (f *Family) Name() string {
	return f.name
}

// HasStyle reports whether the family carries the given style variation.
func (f *Family) HasStyle(s Style) bool {
	_, ok := f.styles[s]
	return ok
}

// Measure implements graphic.FamilyHandle by shaping text at the given size
// with the Regular style. See measure.go.
func (f *Family) Measure(size float64, text string) (width, height float64) {
	v, ok := f.styles[Regular]
	if !ok || size <= 0 {
		return 0, 0
	}
	return shapeMeasure(v.shaped, size, text)
}

// Backend implements graphic.FontBackend over a fixed family set.
type Backend struct {
	names    []string
	families map[string]*Family
}

// Families implements graphic.FontBackend.
func (b *Backend) Families() []string {
	return b.names
}

// Lookup implements graphic.FontBackend.
func (b *Backend) Lookup(name string) (graphic.FamilyHandle, bool) {
	f, ok := b.families[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// Default is the backend registered at init, serving the embedded Go fonts.
var Default *Backend

func init() {
	b := &Backend{families: make(map[string]*Family)}
	b.add("Go", map[Style][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
		Italic:  goitalic.TTF,
	})
	b.add("Go Mono", map[Style][]byte{
		Regular: gomono.TTF,
	})
	Default = b
	graphic.RegisterFontBackend(Default)
}

// add parses each style blob and installs the family. The embedded fonts
// are known-good, so a parse failure here is a programming error.
func (b *Backend) add(name string, styles map[Style][]byte) {
	fam := &Family{name: name, styles: make(map[Style]*variant, len(styles))}
	for style, data := range styles {
		v, err := parseVariant(data)
		if err != nil {
			panic(fmt.Sprintf("typeface: parse %s: %v", name, err))
		}
		fam.styles[style] = v
	}
	b.families[name] = fam
	b.names = append(b.names, name)
}

func parseVariant(data []byte) (*variant, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typesetting parse: %w", err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype parse: %w", err)
	}
	return &variant{data: data, shaped: face.Font, sfnt: sf}, nil
}

// familyOf extracts the typeface Family behind a resolved graphic.Font.
func familyOf(f graphic.Font) (*Family, error) {
	if f.Family() == nil {
		return nil, fmt.Errorf("typeface: unresolved font")
	}
	fam, ok := f.Family().Handle().(*Family)
	if !ok {
		return nil, fmt.Errorf("typeface: font %q belongs to a different backend", f.Family().Name())
	}
	return fam, nil
}

// Source returns the raw TTF bytes for the given font and style, falling
// back to Regular when the style is absent. Used by rendering backends that
// parse fonts themselves (for example ebiten's text faces).
func Source(f graphic.Font, style Style) ([]byte, error) {
	fam, err := familyOf(f)
	if err != nil {
		return nil, err
	}
	v, ok := fam.styles[style]
	if !ok {
		v, ok = fam.styles[Regular]
	}
	if !ok {
		return nil, fmt.Errorf("typeface: family %q has no usable style", fam.name)
	}
	return v.data, nil
}
