package render

import "math"

// Camera maps field coordinates (origin at the center, y up) to screen
// pixels (origin top-left, y down)
type Camera struct {
	Zoom    float64 // pixels per field unit
	ScreenW int     // viewport width in pixels
	ScreenH int     // viewport height in pixels
}

// NewCamera creates a camera that fits a fieldW x fieldH field into the screen
func NewCamera(screenW, screenH int, fieldW, fieldH float64) *Camera {
	c := &Camera{ScreenW: screenW, ScreenH: screenH}
	c.Fit(fieldW, fieldH)
	return c
}

// Fit picks the largest zoom that shows the whole field
func (c *Camera) Fit(fieldW, fieldH float64) {
	c.Zoom = math.Min(float64(c.ScreenW)/fieldW, float64(c.ScreenH)/fieldH)
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
}

// WorldToScreen converts a field position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := float64(c.ScreenW)/2 + wx*c.Zoom
	sy := float64(c.ScreenH)/2 - wy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen pixels to a field position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx) - float64(c.ScreenW)/2) / c.Zoom
	wy := (float64(c.ScreenH)/2 - float64(sy)) / c.Zoom
	return wx, wy
}
