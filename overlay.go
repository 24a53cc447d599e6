package balloons

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// MinGlyphSize is the smallest glyph size in world units.
const MinGlyphSize = 14.0

// GlyphSize returns the overlay font size for circles of the given radius.
func GlyphSize(radius float64) float64 {
	return math.Max(MinGlyphSize, radius*0.8)
}

var (
	glyphSourceOnce sync.Once
	glyphSource     *text.GoTextFaceSource
	glyphSourceErr  error
)

// loadGlyphSource parses the bundled bold face once per process.
func loadGlyphSource() (*text.GoTextFaceSource, error) {
	glyphSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			glyphSourceErr = fmt.Errorf("balloons: failed to parse glyph font: %w", err)
			return
		}
		glyphSource = src
	})
	return glyphSource, glyphSourceErr
}

// glyphEntry pairs a physics body, by index, with the character painted on it.
type glyphEntry struct {
	body int
	char rune
}

// glyphDraw is one glyph to paint this frame, in world coordinates.
type glyphDraw struct {
	X, Y float64
	Char rune
	Size float64
}

// Overlay paints each circle's character on top of its live position. It only
// reads body positions; the physics world owns them.
type Overlay struct {
	world   *World
	entries []glyphEntry
	radius  float64
	color   Color

	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
	buf    []glyphDraw
}

// newOverlay registers one entry per descriptor, in creation order. A nil
// source disables painting but keeps the registry.
func newOverlay(world *World, descs []Descriptor, source *text.GoTextFaceSource) *Overlay {
	o := &Overlay{
		world:   world,
		entries: make([]glyphEntry, len(descs)),
		color:   ColorGlyph,
		source:  source,
		faces:   make(map[int]*text.GoTextFace),
	}
	for i, d := range descs {
		o.entries[i] = glyphEntry{body: i, char: d.Char}
		if d.Radius > o.radius {
			o.radius = d.Radius
		}
	}
	return o
}

// Len returns the number of registered (body, char) pairs.
func (o *Overlay) Len() int {
	return len(o.entries)
}

// glyphs collects every non-sentinel entry at its body's current position.
func (o *Overlay) glyphs() []glyphDraw {
	o.buf = o.buf[:0]
	if o.world == nil {
		return o.buf
	}
	size := GlyphSize(o.radius)
	for _, e := range o.entries {
		if e.char == Sentinel {
			continue
		}
		pos, ok := o.world.Position(e.body)
		if !ok {
			continue
		}
		o.buf = append(o.buf, glyphDraw{X: pos.X, Y: pos.Y, Char: e.char, Size: size})
	}
	return o.buf
}

// face returns the cached face for a pixel size.
func (o *Overlay) face(size float64) *text.GoTextFace {
	key := int(math.Round(size))
	if key < 1 {
		key = 1
	}
	f, ok := o.faces[key]
	if !ok {
		f = &text.GoTextFace{Source: o.source, Size: float64(key)}
		o.faces[key] = f
	}
	return f
}

// Draw paints the glyphs onto dst through cam. It does nothing when dst or
// the font is unavailable.
func (o *Overlay) Draw(dst *ebiten.Image, cam *Camera) {
	if dst == nil || o.source == nil {
		return
	}
	zoom := 1.0
	if cam != nil {
		zoom = cam.Zoom
	}
	for _, g := range o.glyphs() {
		sx, sy := g.X, g.Y
		if cam != nil {
			sx, sy = cam.WorldToScreen(g.X, g.Y)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(o.color.RGBA())
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, string(g.Char), o.face(g.Size*zoom), op)
	}
}
