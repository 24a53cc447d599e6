package balloons

import (
	"net/url"
	"strings"
)

// GridSize is the width and height of the letter grid.
const GridSize = 10

// Greeting words written into the grid, and the rows they occupy.
const (
	FirstWord  = "HAPPY"
	SecondWord = "BIRTHDAY"

	FirstWordRow  = 1
	SecondWordRow = 3
	NameRow       = 5
)

// DefaultPlaceholder is shown when no guest name is supplied.
const DefaultPlaceholder = "ГОСТЬ!"

// Grid is the fixed 10x10 character layout. Cells holding Sentinel become
// circles without a glyph.
type Grid [GridSize][GridSize]rune

// GenerateGrid returns a sentinel-filled grid with the two greeting words and
// the name (truncated to GridSize runes) centered on their rows.
func GenerateGrid(name string) Grid {
	var g Grid
	for r := range g {
		for c := range g[r] {
			g[r][c] = Sentinel
		}
	}
	g.writeCentered(FirstWordRow, FirstWord)
	g.writeCentered(SecondWordRow, SecondWord)
	g.writeCentered(NameRow, truncateRunes(name, GridSize))
	return g
}

// writeCentered writes s into row starting at column (GridSize-len)/2.
func (g *Grid) writeCentered(row int, s string) {
	runes := []rune(s)
	if len(runes) > GridSize {
		runes = runes[:GridSize]
	}
	start := (GridSize - len(runes)) / 2
	for i, r := range runes {
		g[row][start+i] = r
	}
}

// At returns the character at (row, col), or Sentinel when the coordinate lies
// outside the grid.
func (g *Grid) At(row, col int) rune {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return Sentinel
	}
	return g[row][col]
}

// Row returns row i as a string.
func (g *Grid) Row(i int) string {
	return string(g[i][:])
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for i := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.Row(i))
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ResolveName picks the display name: an explicit name first, then the
// "name" query parameter of pageURL, then placeholder. The result is always
// upper-cased. An unparsable pageURL is treated as having no parameter.
func ResolveName(explicit, pageURL, placeholder string) string {
	if explicit != "" {
		return strings.ToUpper(explicit)
	}
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			if v := u.Query().Get("name"); v != "" {
				return strings.ToUpper(v)
			}
		}
	}
	return strings.ToUpper(placeholder)
}
