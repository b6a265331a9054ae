// Package physics implements the player's vertical kinematics: constant
// gravity, a ground clamp and a discrete jump impulse, in a y-down
// coordinate system.
package physics

import "github.com/vovakirdan/dasher/internal/core"

// Body is a kinematic body that moves vertically under gravity.
type Body struct {
	Pos      core.Vec // Top-left corner
	Velocity float64  // Vertical velocity in pixels/second (negative = up)
	Grounded bool     // Whether the last ground check found the body on the ground
	Width    float64
	Height   float64
}

// NewBody creates a body of the given size resting on groundLine at x.
func NewBody(x, groundLine, width, height float64) Body {
	return Body{
		Pos:      core.Vec{X: x, Y: groundLine - height},
		Grounded: true,
		Width:    width,
		Height:   height,
	}
}

// Rest returns the y position at which the body stands on groundLine.
func (b Body) Rest(groundLine float64) float64 {
	return groundLine - b.Height
}

// OnGround reports whether the body is at or below its resting position.
func (b Body) OnGround(groundLine float64) bool {
	return b.Pos.Y >= b.Rest(groundLine)
}

// Bounds returns the body's rectangle.
func (b Body) Bounds() core.Rect {
	return core.RectAt(b.Pos, b.Width, b.Height)
}

// GroundCheck runs the first half of a frame's vertical update. A body at or
// below the ground is clamped onto it and stopped; an airborne body gains
// gravity*dt of downward velocity. Position is not integrated here.
func GroundCheck(b Body, dt, gravity, groundLine float64) Body {
	if b.OnGround(groundLine) {
		b.Pos.Y = b.Rest(groundLine)
		b.Velocity = 0
		b.Grounded = true
		return b
	}

	b.Velocity += gravity * dt
	b.Grounded = false
	return b
}

// TryJump applies impulse to the body's velocity if a jump was requested and
// the body is grounded. The impulse is negative (upward).
func TryJump(b Body, impulse float64, requested bool) Body {
	if requested && b.Grounded {
		b.Velocity += impulse
	}
	return b
}

// Integrate moves the body by its current velocity.
func Integrate(b Body, dt float64) Body {
	b.Pos.Y += b.Velocity * dt
	return b
}

// Dash applies the horizontal dash while it is held in the air.
//
// By default the dash cancels itself: the dash velocity is added
// to x and x is then immediately reset to anchorX, so nothing visibly moves.
// With realDash set, x advances by dashVelocity*dt and stays there.
func Dash(b Body, dashVelocity, dt float64, held bool, anchorX float64, realDash bool) Body {
	if !held || b.Grounded {
		return b
	}
	if realDash {
		b.Pos.X += dashVelocity * dt
		return b
	}
	b.Pos.X += dashVelocity
	b.Pos.X = anchorX
	return b
}
