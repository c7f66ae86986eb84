package render

import "crab-roguelike/internal/geom"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c geom.Point, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that world position c is in the middle.
func (cam *Camera) Center(c geom.Point) {
	// ViewWidth is in columns; each world tile is 2 columns wide.
	cam.OffsetX = c.X - (cam.ViewWidth/2)/2
	cam.OffsetY = c.Y - cam.ViewHeight/2
}

// WorldToScreen converts world p to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (cam *Camera) WorldToScreen(p geom.Point) (sx, sy int, visible bool) {
	sx = (p.X - cam.OffsetX) * 2
	sy = p.Y - cam.OffsetY
	visible = sx >= 0 && sx+1 < cam.ViewWidth && sy >= 0 && sy < cam.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (cam *Camera) ScreenToWorld(sx, sy int) geom.Point {
	return geom.Pt(sx/2+cam.OffsetX, sy+cam.OffsetY)
}
