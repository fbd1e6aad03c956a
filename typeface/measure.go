package typeface

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	xfont "golang.org/x/image/font"

	"github.com/phanxgames/graphic"
)

// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing one across
// sequential calls avoids reallocating its buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapeMeasure shapes a single left-to-right run and returns its advance
// width and line height (ascent plus descent) in pixels. Newlines receive
// no special treatment; text runs are single-line.
func shapeMeasure(f *font.Font, size float64, text string) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	width = fixedToFloat(output.Advance)
	// Descent is stored negative in the shaping output.
	height = fixedToFloat(output.LineBounds.Ascent - output.LineBounds.Descent)
	return width, height
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; mixed-script text should be
// split into runs by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// Face returns an x/image font face for the given font and style, suitable
// for software glyph rasterization. Size is interpreted at 72 DPI so one
// font unit equals one pixel. The caller should Close the face when done.
func Face(f graphic.Font, style Style) (xfont.Face, error) {
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
	return opentype.NewFace(v.sfnt, &opentype.FaceOptions{
		Size:    f.Size(),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}
