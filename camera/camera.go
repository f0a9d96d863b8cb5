// Package camera maps the wrap-around world onto the window.
package camera

// Point is a screen position.
type Point struct{ X, Y float32 }

// Camera fits the whole world into the viewport with a uniform scale,
// centring it and leaving letterbox bars on the longer axis.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions (for toroidal wrapping)
	WorldW, WorldH float32

	// Derived by fit
	Scale            float32 // screen pixels per world unit
	OffsetX, OffsetY float32 // screen position of world origin
}

// New creates a camera showing the whole world.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and refits the world.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	scale := viewportW / c.WorldW
	if s := viewportH / c.WorldH; s < scale {
		scale = s
	}
	c.Scale = scale
	c.OffsetX = (viewportW - c.WorldW*scale) / 2
	c.OffsetY = (viewportH - c.WorldH*scale) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Scale, c.OffsetY + wy*c.Scale
}

// ScreenToWorld converts screen coordinates to world coordinates.
// ok is false for points in the letterbox outside the world.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32, ok bool) {
	wx = (sx - c.OffsetX) / c.Scale
	wy = (sy - c.OffsetY) / c.Scale
	ok = wx >= 0 && wx <= c.WorldW && wy >= 0 && wy <= c.WorldH
	return wx, wy, ok
}

// GhostPositions returns extra screen positions for something of the given
// world radius that straddles a world edge, so it shows on both sides while
// wrapping. Returns up to 3 positions (4 with the primary at a corner).
func (c *Camera) GhostPositions(wx, wy, radius float32) []Point {
	var ghosts []Point

	var dx, dy float32
	switch {
	case wx < radius:
		dx = c.WorldW
	case wx > c.WorldW-radius:
		dx = -c.WorldW
	}
	switch {
	case wy < radius:
		dy = c.WorldH
	case wy > c.WorldH-radius:
		dy = -c.WorldH
	}

	if dx != 0 {
		sx, sy := c.WorldToScreen(wx+dx, wy)
		ghosts = append(ghosts, Point{sx, sy})
	}
	if dy != 0 {
		sx, sy := c.WorldToScreen(wx, wy+dy)
		ghosts = append(ghosts, Point{sx, sy})
	}
	if dx != 0 && dy != 0 {
		sx, sy := c.WorldToScreen(wx+dx, wy+dy)
		ghosts = append(ghosts, Point{sx, sy})
	}

	return ghosts
}

// DrawPositions returns the primary screen position of a world point,
// followed by its ghosts when wraps is set. Things that never cross an
// edge, like lights, pass wraps=false.
func (c *Camera) DrawPositions(wx, wy, radius float32, wraps bool) []Point {
	sx, sy := c.WorldToScreen(wx, wy)
	out := []Point{{sx, sy}}
	if wraps {
		out = append(out, c.GhostPositions(wx, wy, radius)...)
	}
	return out
}

// WorldRect returns the screen rectangle covered by the world.
func (c *Camera) WorldRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.WorldW * c.Scale, c.WorldH * c.Scale
}
