package balloons

import (
	"math"
	"math/rand/v2"
)

// DefaultStackInset is the margin kept free on every side of the viewport
// when laying out the stack.
const DefaultStackInset = 50.0

// Descriptor describes one circle of the stack before it is handed to the
// physics world.
type Descriptor struct {
	X, Y     float64
	Radius   float64
	Color    Color
	Char     rune
	Row, Col int
}

// StackConfig controls BuildStack.
type StackConfig struct {
	Rows, Cols int
	Radius     float64
	Width      float64
	Height     float64

	// Inset is the margin on every side; 0 means DefaultStackInset.
	Inset float64

	// ColorFn overrides the random pastel fill when set.
	ColorFn ColorFunc

	// Rand is the source for pastel colors; nil uses the global source.
	Rand *rand.Rand
}

// BuildStack lays out Rows*Cols circles evenly over the viewport and assigns
// each a color and the grid character at its (row, col). Descriptors are
// returned in creation order, row-major.
func BuildStack(grid Grid, cfg StackConfig) []Descriptor {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil
	}
	inset := cfg.Inset
	if inset == 0 {
		inset = DefaultStackInset
	}
	r := cfg.Radius

	hgap := (cfg.Width - 2*inset) / float64(cfg.Cols)
	vgap := (cfg.Height - 2*inset) / float64(cfg.Rows)

	startX := inset + (hgap-r*2)/2
	startY := inset + (vgap-r*2)/2

	descs := make([]Descriptor, 0, cfg.Rows*cfg.Cols)
	stackLayout(startX, startY, cfg.Cols, cfg.Rows, hgap-r*2, vgap-r*2, r, func(x, y float64, col, row int) {
		var c Color
		if cfg.ColorFn != nil {
			c = cfg.ColorFn(row, col)
		} else {
			c = PastelColor(cfg.Rand)
		}
		descs = append(descs, Descriptor{
			X:      x,
			Y:      y,
			Radius: r,
			Color:  c,
			Char:   grid.At(row, col),
			Row:    row,
			Col:    col,
		})
	})
	return descs
}

// stackLayout walks a rows x cols block starting at (x, y), placing equally
// sized circles left to right and top to bottom with colGap and rowGap between
// their edges. fn receives each circle's center.
func stackLayout(x, y float64, cols, rows int, colGap, rowGap, radius float64, fn func(cx, cy float64, col, row int)) {
	size := radius * 2
	cy := y
	for row := 0; row < rows; row++ {
		cx := x
		for col := 0; col < cols; col++ {
			fn(cx+radius, cy+radius, col, row)
			cx += size + colGap
		}
		cy += size + rowGap
	}
}

// PastelColor returns a random light color: hue in [0,360), saturation in
// [50,80]% and lightness in [70,90]%, each drawn independently. A nil rng uses
// the global source.
func PastelColor(rng *rand.Rand) Color {
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	hue := math.Floor(f() * 360)
	sat := math.Floor(50 + f()*30)
	light := math.Floor(70 + f()*20)
	return ColorFromHSL(hue, sat, light)
}

// CircleRadius returns the circle radius for a viewport of w x h.
func CircleRadius(w, h float64) float64 {
	return math.Min(w, h) / 22
}
