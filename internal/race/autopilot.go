package race

import (
	"math"

	"github.com/vovakirdan/dasher/internal/core"
)

// Autopilot returns the input a perfect player would give this frame: it
// requests a jump when the next nebula is close enough that the player will
// reach the top of the jump just as the nebula passes underneath.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	lo, hi := g.dangerZone()
	center := (lo + hi) / 2

	phys := g.cfg.Physics
	apex := -phys.JumpImpulse / phys.Gravity
	reach := center + math.Abs(g.cfg.Nebulae.Velocity)*apex

	for _, n := range g.nebulae {
		if n.Pos.X > center && n.Pos.X <= reach {
			in.Set(core.ActionJump)
			break
		}
	}
	return in
}

// dangerZone returns the range of nebula x positions that overlap a
// grounded player horizontally once both boxes are padded.
func (g *Game) dangerZone() (lo, hi float64) {
	pad := g.cfg.Collision.Padding
	nebW := g.cfg.Nebulae.Sheet.FrameWidth()
	px := g.player.Pos.X
	lo = px - nebW + pad
	hi = px + g.player.Width - 3*pad
	return lo, hi
}
