package obj

import (
	"math"

	"github.com/milk9111/runjump/common"
)

// Camera maps Y-up world units onto a Y-down pixel screen centered on a
// smoothed follow target.
type Camera struct {
	Pos common.Vec2

	screenW int
	screenH int
	ppu     float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
}

// NewCamera creates a camera for a screen of the given pixel size, drawing
// ppu pixels per world unit.
func NewCamera(screenW, screenH int, ppu float64) *Camera {
	if ppu <= 0 {
		ppu = 1
	}
	return &Camera{screenW: screenW, screenH: screenH, ppu: ppu, smooth: 0.15}
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

func (c *Camera) PixelsPerUnit() float64 {
	return c.ppu
}

// Update moves the camera toward target. Call once per frame.
func (c *Camera) Update(target common.Vec2) {
	if c.smooth <= 0 || c.smooth >= 1 {
		c.SnapTo(target)
		return
	}
	c.Pos.X += (target.X - c.Pos.X) * c.smooth
	c.Pos.Y += (target.Y - c.Pos.Y) * c.smooth
	c.snapToPixel()
}

// SnapTo places the camera on target without smoothing, e.g. after a respawn.
func (c *Camera) SnapTo(target common.Vec2) {
	c.Pos = target
	c.snapToPixel()
}

// snap position to the pixel grid so static geometry doesn't shimmer
func (c *Camera) snapToPixel() {
	c.Pos.X = math.Round(c.Pos.X*c.ppu) / c.ppu
	c.Pos.Y = math.Round(c.Pos.Y*c.ppu) / c.ppu
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p common.Vec2) (float64, float64) {
	sx := (p.X-c.Pos.X)*c.ppu + float64(c.screenW)/2
	sy := float64(c.screenH)/2 - (p.Y-c.Pos.Y)*c.ppu
	return sx, sy
}

// RectToScreen returns the top-left corner and pixel size of a world rect.
func (c *Camera) RectToScreen(r common.Rect) (x, y, w, h float64) {
	x, y = c.WorldToScreen(common.Vec2{X: r.X, Y: r.Top()})
	return x, y, r.Width * c.ppu, r.Height * c.ppu
}

// Visible reports whether any part of r lands on screen.
func (c *Camera) Visible(r common.Rect) bool {
	halfW := float64(c.screenW) / 2 / c.ppu
	halfH := float64(c.screenH) / 2 / c.ppu
	view := common.Rect{X: c.Pos.X - halfW, Y: c.Pos.Y - halfH, Width: halfW * 2, Height: halfH * 2}
	return view.Intersects(r)
}
