package balloons

import "math"

// Camera fits the world into a screen rectangle with one uniform scale and no
// rotation. Between a resize and the rebuild that follows it, the old world
// is letterboxed into the new canvas through the camera.
type Camera struct {
	// X, Y is the world point drawn at the middle of Viewport.
	X, Y float64
	// Zoom is screen pixels per world unit.
	Zoom float64
	// Viewport is the destination rectangle on screen.
	Viewport Rect
}

func newCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// LookAt centers the camera on bounds and picks the largest zoom at which
// bounds fits entirely inside the viewport.
func (c *Camera) LookAt(bounds Rect) {
	c.X = bounds.X + bounds.Width/2
	c.Y = bounds.Y + bounds.Height/2
	if bounds.Width <= 0 || bounds.Height <= 0 || c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		c.Zoom = 1
		return
	}
	c.Zoom = math.Min(c.Viewport.Width/bounds.Width, c.Viewport.Height/bounds.Height)
}

func (c *Camera) screenCenter() (float64, float64) {
	return c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2
}

// WorldToScreen maps a world point into the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	mx, my := c.screenCenter()
	return mx + (wx-c.X)*c.Zoom, my + (wy-c.Y)*c.Zoom
}

// ScreenToWorld is the inverse of WorldToScreen. A zero zoom is treated as 1.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	z := c.Zoom
	if z == 0 {
		z = 1
	}
	mx, my := c.screenCenter()
	return c.X + (sx-mx)/z, c.Y + (sy-my)/z
}

// screenToWorld converts through cam, or returns the point unchanged when cam
// is nil.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam == nil {
		return sx, sy
	}
	return cam.ScreenToWorld(sx, sy)
}
