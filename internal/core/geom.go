// Package core provides fundamental types and utilities shared by the race
// simulation and the platforms that drive it. Nothing here depends on a UI
// toolkit, so game logic stays pure and testable.
package core

import "github.com/jakecoffman/cp"

// Vec is a point in play-field pixel space (y grows downward).
type Vec = cp.Vector

// Rect represents an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt places a rectangle of size w x h with its top-left corner at pos.
func RectAt(pos Vec, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Inset shrinks the rectangle by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// BB converts the rectangle to a chipmunk bounding box. In y-down space the
// box's B field holds the top edge and T the bottom edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// Intersects reports whether two rectangles overlap. Touching edges count
// as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.BB().Intersects(other.BB())
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
