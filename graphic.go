package graphic

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens at render submission time in the backends.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from red, green, and blue components.
// Out-of-range components are clamped to [0, 1]; the constructor never fails.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA creates a color from red, green, blue, and alpha components.
// Out-of-range components are clamped to [0, 1]; the constructor never fails.
func RGBA(r, g, b, a float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// Common colors.
var (
	Black     = RGB(0, 0, 0)
	White     = RGB(1, 1, 1)
	Red       = RGB(1, 0, 0)
	Green     = RGB(0, 1, 0)
	Blue      = RGB(0, 0, 1)
	Yellow    = RGB(1, 1, 0)
	LightGrey = RGB(0.827, 0.827, 0.827)
)

// NRGBA converts the color to a straight-alpha color.NRGBA for use with the
// standard image packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional "#".
// Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Vec2 is a 2D vector used for positions, vertices, offsets, and sizes
// throughout the API. The coordinate system has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Axis selects the arrangement direction of a layout combinator.
type Axis uint8

const (
	Horizontal Axis = iota // side by side, left to right
	Vertical               // stacked, top to bottom
)

// Alignment fractions for AlignH and AlignV. The fraction describes where
// along the cross axis the two bounding boxes are made to coincide:
// 0 aligns the leading edges, 1 the trailing edges, 0.5 the centers.
// Values outside [0, 1] are valid and extrapolate past the edges.
const (
	Top    = 0.0 // AlignH: top edges coincide
	Left   = 0.0 // AlignV: left edges coincide
	Center = 0.5 // centers coincide
	Bottom = 1.0 // AlignH: bottom edges coincide
	Right  = 1.0 // AlignV: right edges coincide
)
