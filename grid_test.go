package balloons

import (
	"strings"
	"testing"
)

func TestGenerateGridUntouchedRowsAreSentinel(t *testing.T) {
	for n := 0; n <= GridSize; n++ {
		name := strings.Repeat("X", n)
		g := GenerateGrid(name)
		for r := 0; r < GridSize; r++ {
			if r == FirstWordRow || r == SecondWordRow || r == NameRow {
				continue
			}
			if got, want := g.Row(r), strings.Repeat("*", GridSize); got != want {
				t.Errorf("GenerateGrid(%q).Row(%d) = %q, want %q", name, r, got, want)
			}
		}
	}
}

func TestGenerateGridCentersName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
	}{
		{"empty", "", 5},
		{"one rune", "A", 4},
		{"two runes", "AL", 4},
		{"three runes", "BOB", 3},
		{"odd", "ALICE", 2},
		{"even", "GEORGINA", 1},
		{"nine", "ABCDEFGHI", 0},
		{"full row", "ABCDEFGHIJ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GenerateGrid(tt.input)
			runes := []rune(tt.input)
			for c := 0; c < GridSize; c++ {
				want := rune(Sentinel)
				if c >= tt.start && c < tt.start+len(runes) {
					want = runes[c-tt.start]
				}
				if got := g[NameRow][c]; got != want {
					t.Errorf("row %d col %d = %q, want %q", NameRow, c, got, want)
				}
			}
		})
	}
}

func TestGenerateGridTruncatesLongName(t *testing.T) {
	g := GenerateGrid("MAXIMILIANUS")
	if got, want := g.Row(NameRow), "MAXIMILIAN"; got != want {
		t.Errorf("name row = %q, want %q", got, want)
	}

	g = GenerateGrid("ВЛАДИСЛАВОВНА")
	if got, want := g.Row(NameRow), "ВЛАДИСЛАВО"; got != want {
		t.Errorf("cyrillic name row = %q, want %q", got, want)
	}
}

func TestGenerateGridEndToEnd(t *testing.T) {
	g := GenerateGrid(ResolveName("Al", "", DefaultPlaceholder))

	want := map[int]string{
		FirstWordRow:  "**HAPPY***",
		SecondWordRow: "*BIRTHDAY*",
		NameRow:       "****AL****",
	}
	for row, s := range want {
		if got := g.Row(row); got != s {
			t.Errorf("Row(%d) = %q, want %q", row, got, s)
		}
	}
	if g[NameRow][4] != 'A' || g[NameRow][5] != 'L' {
		t.Errorf("name not at columns 4-5: %q", g.Row(NameRow))
	}
}

func TestGenerateGridPlaceholder(t *testing.T) {
	g := GenerateGrid(ResolveName("", "", DefaultPlaceholder))
	if got, want := g.Row(NameRow), "**ГОСТЬ!**"; got != want {
		t.Errorf("Row(%d) = %q, want %q", NameRow, got, want)
	}
}

func TestGridAt(t *testing.T) {
	g := GenerateGrid("AL")
	tests := []struct {
		name     string
		row, col int
		want     rune
	}{
		{"letter", NameRow, 4, 'A'},
		{"sentinel", 0, 0, Sentinel},
		{"row past end", 10, 0, Sentinel},
		{"col past end", 0, 10, Sentinel},
		{"negative", -1, 3, Sentinel},
		{"far outside", 14, 9, Sentinel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.row, tt.col); got != tt.want {
				t.Errorf("At(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestGridString(t *testing.T) {
	s := GenerateGrid("AL").String()
	lines := strings.Split(s, "\n")
	if len(lines) != GridSize {
		t.Fatalf("String() has %d lines, want %d", len(lines), GridSize)
	}
	if lines[SecondWordRow] != "*BIRTHDAY*" {
		t.Errorf("line %d = %q", SecondWordRow, lines[SecondWordRow])
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		pageURL  string
		want     string
	}{
		{"explicit wins", "al", "https://example.com/?name=bob", "AL"},
		{"query param", "", "https://example.com/card?name=bob", "BOB"},
		{"deep link", "", "birthday://card?name=Zoë", "ZOË"},
		{"escaped", "", "https://example.com/?name=%D0%B0%D0%BD%D1%8F", "АНЯ"},
		{"no param", "", "https://example.com/", "ГОСТЬ!"},
		{"empty param", "", "https://example.com/?name=", "ГОСТЬ!"},
		{"bad url", "", "://%zz", "ГОСТЬ!"},
		{"nothing", "", "", "ГОСТЬ!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(tt.explicit, tt.pageURL, DefaultPlaceholder); got != tt.want {
				t.Errorf("ResolveName(%q, %q) = %q, want %q", tt.explicit, tt.pageURL, got, tt.want)
			}
		})
	}
}
