// Package race implements the Dasher race: a single runner jumping over a
// fixed set of scrolling nebulae until it reaches the finish line.
//
// A Game is stepped once per frame with the elapsed seconds and the sampled
// input, and describes what to draw through Frame.
package race

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/anim"
	"github.com/vovakirdan/dasher/internal/collision"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/physics"
)

// Nebula is a single animated obstacle.
type Nebula struct {
	Anim anim.AnimationState
	Pos  core.Vec // Top-left corner in play-field pixels
}

// Bounds returns the nebula's frame rectangle on the play field.
func (n Nebula) Bounds() core.Rect {
	return core.RectAt(n.Pos, n.Anim.Rect.W, n.Anim.Rect.H)
}

// Game holds all state of one race.
type Game struct {
	cfg        config.DasherConfig
	player     physics.Body
	run        anim.AnimationState // Run sheet, used while grounded
	jump       anim.AnimationState // Jump sheet, used while airborne
	nebulae    []Nebula
	layers     []Layer
	finishLine float64 // Horizontal position of the finish line
	groundLine float64 // Bottom edge of the play field
	anchorX    float64 // Fixed horizontal position of the player
	collided   bool    // Sticky: set on the first overlap and never cleared
	state      RaceState
	paused     bool
	elapsed    float64 // Seconds simulated since the race started
	frames     int     // Frames simulated since the race started
}

// New creates a race for the given configuration. The configuration is
// expected to be valid; see config.DasherConfig.Validate.
func New(cfg config.DasherConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset puts every entity back at its starting position.
func (g *Game) Reset() {
	cfg := g.cfg
	width := float64(cfg.Window.Width)

	g.run = anim.NewState(cfg.Player.Sheet, cfg.Player.FrameDuration)
	g.jump = anim.NewState(cfg.Player.JumpSheet, cfg.Player.JumpFrameDuration)

	g.groundLine = float64(cfg.Window.Height)
	g.anchorX = width/2 - g.run.Rect.W/2
	g.player = physics.NewBody(g.anchorX, g.groundLine, g.run.Rect.W, g.run.Rect.H)

	g.nebulae = make([]Nebula, cfg.Nebulae.Count)
	for i := range g.nebulae {
		state := anim.NewState(cfg.Nebulae.Sheet, cfg.Nebulae.FrameDuration)
		g.nebulae[i] = Nebula{
			Anim: state,
			Pos: core.Vec{
				X: width + float64(i)*cfg.Nebulae.Spacing,
				Y: g.groundLine - state.Rect.H,
			},
		}
	}
	g.finishLine = g.nebulae[len(g.nebulae)-1].Pos.X

	g.layers = NewLayers(cfg.Background)
	g.collided = false
	g.state = Playing
	g.paused = false
	g.elapsed = 0
	g.frames = 0
}

// Update advances the race by dt seconds.
//
// The order of the steps is fixed: the player's ground check, jump and dash
// come first, then nebulae and the finish line move, then the player's
// height is integrated, then animations advance, then collisions and finally
// the finish line are checked. Collisions are only checked while the race is
// running. Everything keeps moving after the race ends
// unless behavior.freeze_on_end is set.
//
// Update panics if dt is negative.
func (g *Game) Update(dt float64, in core.InputFrame) RaceState {
	if dt < 0 {
		panic(fmt.Sprintf("race: negative delta time %v", dt))
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.state
	}
	if g.state.Terminal() && g.cfg.Behavior.FreezeOnEnd {
		return g.state
	}

	g.frames++
	if !g.state.Terminal() {
		g.elapsed += dt
	}

	for i := range g.layers {
		g.layers[i] = g.layers[i].Scroll(dt)
	}

	// 1. Ground check, gravity, jump and dash
	phys := g.cfg.Physics
	g.player = physics.GroundCheck(g.player, dt, phys.Gravity, g.groundLine)
	g.player = physics.TryJump(g.player, phys.JumpImpulse, in.Has(core.ActionJump))
	g.player = physics.Dash(g.player, phys.DashVelocity, dt, in.Has(core.ActionDash), g.anchorX, g.cfg.Behavior.RealDash)

	// 2. Nebulae and finish line scroll left
	shift := g.cfg.Nebulae.Velocity * dt
	for i := range g.nebulae {
		g.nebulae[i].Pos.X += shift
	}
	g.finishLine += shift

	// 3. Vertical integration
	g.player = physics.Integrate(g.player, dt)

	// 4. Player animation, on the sheet matching the ground check
	if g.player.Grounded {
		g.run = anim.Advance(g.run, dt, g.cfg.Player.MaxFrame)
	} else {
		g.jump = anim.Advance(g.jump, dt, g.cfg.Player.JumpMaxFrame)
	}

	// 5. Nebula animation
	for i := range g.nebulae {
		g.nebulae[i].Anim = anim.Advance(g.nebulae[i].Anim, dt, g.cfg.Nebulae.MaxFrame)
	}

	// 6. Collision is sticky; a won race is no longer checked
	if g.state == Playing && collision.Check(g.player.Bounds(), g.obstacleBounds(), g.cfg.Collision.Padding) {
		g.collided = true
	}

	// 7. Outcome; a reached outcome is final
	if g.state == Playing {
		switch {
		case g.collided:
			g.state = Lost
		case g.player.Pos.X >= g.finishLine:
			g.state = Won
		}
	}

	return g.state
}

func (g *Game) obstacleBounds() []core.Rect {
	rects := make([]core.Rect, len(g.nebulae))
	for i, n := range g.nebulae {
		rects[i] = n.Bounds()
	}
	return rects
}

// State returns the current outcome.
func (g *Game) State() RaceState {
	return g.state
}

// Collided reports whether the player touched a nebula while the race was
// running. It is never true for a won race.
func (g *Game) Collided() bool {
	return g.collided
}

// Paused reports whether the race is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// FinishLine returns the current horizontal position of the finish line.
func (g *Game) FinishLine() float64 {
	return g.finishLine
}

// Player returns the player's body.
func (g *Game) Player() physics.Body {
	return g.player
}

// Nebulae returns a copy of the nebulae in spawn order.
func (g *Game) Nebulae() []Nebula {
	out := make([]Nebula, len(g.nebulae))
	copy(out, g.nebulae)
	return out
}

// Elapsed returns the race time in seconds, which stops once the race ends.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Frames returns the number of frames simulated, paused frames excluded.
func (g *Game) Frames() int {
	return g.frames
}
