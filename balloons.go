package balloons

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sentinel marks a grid cell, and the circle built from it, that carries no
// visible glyph.
const Sentinel = '*'

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Default scene colors.
var (
	ColorBackground = Color{0x11 / 255.0, 0x11 / 255.0, 0x11 / 255.0, 1}
	ColorStroke     = Color{0x33 / 255.0, 0x33 / 255.0, 0x33 / 255.0, 1}
	ColorGlyph      = Color{0, 0, 0, 1}
	ColorWall       = Color{0x2e / 255.0, 0x2b / 255.0, 0x44 / 255.0, 1}
)

// ColorFromHSL builds an opaque color from hue in degrees and saturation and
// lightness in percent.
func ColorFromHSL(h, s, l float64) Color {
	c := colorful.Hsl(h, s/100, l/100).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// RGBA converts c to a premultiplied color.RGBA for Ebitengine draw calls.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ColorFunc picks the fill color for the circle at (row, col).
type ColorFunc func(row, col int) Color

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
