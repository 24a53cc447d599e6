package balloons

import (
	"math"
	"testing"
)

func TestCameraLookAt(t *testing.T) {
	tests := []struct {
		name     string
		viewport Rect
		bounds   Rect
		zoom     float64
	}{
		{"same size", Rect{X: 10, Y: 10, Width: 780, Height: 780}, Rect{Width: 780, Height: 780}, 1},
		{"window grew", Rect{X: 10, Y: 10, Width: 1560, Height: 1000}, Rect{Width: 780, Height: 780}, 1000.0 / 780},
		{"window shrank", Rect{X: 10, Y: 10, Width: 390, Height: 780}, Rect{Width: 780, Height: 780}, 0.5},
		{"empty bounds", Rect{Width: 100, Height: 100}, Rect{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCamera(tt.viewport)
			c.LookAt(tt.bounds)
			if math.Abs(c.Zoom-tt.zoom) > 1e-9 {
				t.Errorf("Zoom = %v, want %v", c.Zoom, tt.zoom)
			}
			// The bounds center lands on the viewport center.
			sx, sy := c.WorldToScreen(tt.bounds.X+tt.bounds.Width/2, tt.bounds.Y+tt.bounds.Height/2)
			cx := tt.viewport.X + tt.viewport.Width/2
			cy := tt.viewport.Y + tt.viewport.Height/2
			if math.Abs(sx-cx) > 1e-9 || math.Abs(sy-cy) > 1e-9 {
				t.Errorf("center maps to (%v, %v), want (%v, %v)", sx, sy, cx, cy)
			}
		})
	}
}

func TestCameraIdentityAfterLookAt(t *testing.T) {
	c := newCamera(Rect{X: 10, Y: 10, Width: 780, Height: 780})
	c.LookAt(Rect{Width: 780, Height: 780})
	sx, sy := c.WorldToScreen(0, 0)
	if sx != 10 || sy != 10 {
		t.Errorf("WorldToScreen(0, 0) = (%v, %v), want (10, 10)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := newCamera(Rect{X: 20, Y: 5, Width: 640, Height: 480})
	c.LookAt(Rect{X: 0, Y: 0, Width: 300, Height: 500})
	points := [][2]float64{{0, 0}, {150, 250}, {300, 500}, {-40, 12.5}}
	for _, p := range points {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if math.Abs(wx-p[0]) > 1e-9 || math.Abs(wy-p[1]) > 1e-9 {
			t.Errorf("round trip %v -> (%v, %v) -> (%v, %v)", p, sx, sy, wx, wy)
		}
	}
}

func TestScreenToWorldNilCamera(t *testing.T) {
	if x, y := screenToWorld(nil, 3, 4); x != 3 || y != 4 {
		t.Errorf("screenToWorld(nil, 3, 4) = (%v, %v)", x, y)
	}
}
