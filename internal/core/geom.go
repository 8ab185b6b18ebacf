// Package core provides the types shared by games and the terminal platform:
// the screen buffer, input frames, runtime settings and viewport math.
// It has no Bubble Tea dependency so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Viewport maps a world-space window in meters onto a screen area.
// World Y points up; screen rows grow downward.
type Viewport struct {
	Area       Rect
	MinX, MaxX float64
	MinY, MaxY float64
}

func (v Viewport) valid() bool {
	return v.Area.W > 0 && v.Area.H > 0 && v.MaxX > v.MinX && v.MaxY > v.MinY
}

// ToScreen returns the cell containing the world point (x, y) and whether it
// falls inside the area.
func (v Viewport) ToScreen(x, y float64) (int, int, bool) {
	if !v.valid() || math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	fx := (x - v.MinX) / (v.MaxX - v.MinX)
	fy := (y - v.MinY) / (v.MaxY - v.MinY)
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	col := min(int(math.Floor(fx*float64(v.Area.W))), v.Area.W-1)
	row := min(int(math.Floor(fy*float64(v.Area.H))), v.Area.H-1)
	return v.Area.X + col, v.Area.Bottom() - 1 - row, true
}

// ToWorld returns the world point at the center of cell (sx, sy).
func (v Viewport) ToWorld(sx, sy int) (float64, float64) {
	if !v.valid() {
		return 0, 0
	}
	col := float64(sx-v.Area.X) + 0.5
	row := float64(v.Area.Bottom()-1-sy) + 0.5
	x := v.MinX + col/float64(v.Area.W)*(v.MaxX-v.MinX)
	y := v.MinY + row/float64(v.Area.H)*(v.MaxY-v.MinY)
	return x, y
}
