package balloons

import (
	"math"
	"math/rand/v2"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const eps = 1e-9

func pinnedColor(row, col int) Color {
	return Color{R: float64(row) / 20, G: float64(col) / 20, B: 0.5, A: 1}
}

func TestBuildStackCoversEveryCell(t *testing.T) {
	grid := GenerateGrid("AL")
	descs := BuildStack(grid, StackConfig{
		Rows: 15, Cols: 10, Radius: 20, Width: 780, Height: 780, ColorFn: pinnedColor,
	})
	if len(descs) != 150 {
		t.Fatalf("len(descs) = %d, want 150", len(descs))
	}
	for i, d := range descs {
		if d.Row != i/10 || d.Col != i%10 {
			t.Errorf("descs[%d] at (%d, %d), want row-major (%d, %d)", i, d.Row, d.Col, i/10, i%10)
		}
		if d.Row >= GridSize || d.Col >= GridSize {
			if d.Char != Sentinel {
				t.Errorf("descs[%d] (%d, %d) char = %q, want sentinel", i, d.Row, d.Col, d.Char)
			}
			continue
		}
		if d.Char != grid[d.Row][d.Col] {
			t.Errorf("descs[%d] char = %q, want %q", i, d.Char, grid[d.Row][d.Col])
		}
	}
}

func TestBuildStackSpacing(t *testing.T) {
	const (
		w, h   = 780.0, 600.0
		rows   = 4
		cols   = 5
		radius = 12.0
	)
	descs := BuildStack(GenerateGrid(""), StackConfig{
		Rows: rows, Cols: cols, Radius: radius, Width: w, Height: h, ColorFn: pinnedColor,
	})
	hgap := (w - 2*DefaultStackInset) / cols
	vgap := (h - 2*DefaultStackInset) / rows
	for _, d := range descs {
		wantX := DefaultStackInset + hgap*(float64(d.Col)+0.5)
		wantY := DefaultStackInset + vgap*(float64(d.Row)+0.5)
		if math.Abs(d.X-wantX) > eps || math.Abs(d.Y-wantY) > eps {
			t.Errorf("(%d, %d) center = (%v, %v), want (%v, %v)", d.Row, d.Col, d.X, d.Y, wantX, wantY)
		}
		if d.Radius != radius {
			t.Errorf("(%d, %d) radius = %v, want %v", d.Row, d.Col, d.Radius, radius)
		}
	}

	// The block is centered: equal slack on both sides.
	first, last := descs[0], descs[len(descs)-1]
	left := first.X - first.Radius
	right := w - (last.X + last.Radius)
	if math.Abs(left-right) > eps {
		t.Errorf("horizontal slack %v left, %v right", left, right)
	}
	top := first.Y - first.Radius
	bottom := h - (last.Y + last.Radius)
	if math.Abs(top-bottom) > eps {
		t.Errorf("vertical slack %v top, %v bottom", top, bottom)
	}
}

func TestBuildStackCustomInset(t *testing.T) {
	descs := BuildStack(Grid{}, StackConfig{
		Rows: 1, Cols: 2, Radius: 5, Width: 100, Height: 100, Inset: 10, ColorFn: pinnedColor,
	})
	if len(descs) != 2 {
		t.Fatalf("len(descs) = %d, want 2", len(descs))
	}
	if math.Abs(descs[0].X-30) > eps || math.Abs(descs[1].X-70) > eps || math.Abs(descs[0].Y-50) > eps {
		t.Errorf("centers = (%v,%v) (%v,%v)", descs[0].X, descs[0].Y, descs[1].X, descs[1].Y)
	}
}

func TestBuildStackColorFn(t *testing.T) {
	var calls [][2]int
	fn := func(row, col int) Color {
		calls = append(calls, [2]int{row, col})
		return pinnedColor(row, col)
	}
	descs := BuildStack(GenerateGrid(""), StackConfig{Rows: 3, Cols: 2, Radius: 5, Width: 300, Height: 300, ColorFn: fn})
	if len(calls) != 6 {
		t.Fatalf("ColorFn called %d times, want 6", len(calls))
	}
	for i, d := range descs {
		if calls[i] != [2]int{d.Row, d.Col} {
			t.Errorf("call %d = %v, want (%d, %d)", i, calls[i], d.Row, d.Col)
		}
		if d.Color != pinnedColor(d.Row, d.Col) {
			t.Errorf("descs[%d].Color = %v, want %v", i, d.Color, pinnedColor(d.Row, d.Col))
		}
	}
}

func TestBuildStackIsRepeatable(t *testing.T) {
	cfg := StackConfig{Rows: 15, Cols: 10, Radius: CircleRadius(780, 780), Width: 780, Height: 780}
	grid := GenerateGrid("AL")
	a := BuildStack(grid, cfg)
	b := BuildStack(grid, cfg)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Radius != b[i].Radius || a[i].Char != b[i].Char {
			t.Errorf("descs[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuildStackEmpty(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"no rows", 0, 10},
		{"no cols", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildStack(Grid{}, StackConfig{Rows: tt.rows, Cols: tt.cols, Radius: 5, Width: 100, Height: 100}); got != nil {
				t.Errorf("BuildStack = %d descriptors, want nil", len(got))
			}
		})
	}
}

func TestPastelColorRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		c := PastelColor(rng)
		_, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
		if s < 0.5-1e-6 || s > 0.8+1e-6 {
			t.Fatalf("sample %d saturation = %v, want [0.5, 0.8]", i, s)
		}
		if l < 0.7-1e-6 || l > 0.9+1e-6 {
			t.Fatalf("sample %d lightness = %v, want [0.7, 0.9]", i, l)
		}
		if c.A != 1 {
			t.Fatalf("sample %d alpha = %v, want 1", i, c.A)
		}
	}
}

func TestPastelColorSeeded(t *testing.T) {
	a := PastelColor(rand.New(rand.NewPCG(7, 7)))
	b := PastelColor(rand.New(rand.NewPCG(7, 7)))
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestCircleRadius(t *testing.T) {
	tests := []struct {
		w, h, want float64
	}{
		{780, 780, 780.0 / 22},
		{1000, 440, 20},
		{440, 1000, 20},
	}
	for _, tt := range tests {
		if got := CircleRadius(tt.w, tt.h); math.Abs(got-tt.want) > eps {
			t.Errorf("CircleRadius(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
