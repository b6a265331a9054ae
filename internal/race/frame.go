package race

import "github.com/vovakirdan/dasher/internal/core"

// Sprite names the image a draw operation samples from. Background layers use
// their configured layer name.
type Sprite string

const (
	SpriteRun    Sprite = "dasher"
	SpriteJump   Sprite = "dasher_jump"
	SpriteNebula Sprite = "nebula"
)

// OpKind distinguishes image draws from text draws.
type OpKind int

const (
	OpSprite OpKind = iota
	OpText
)

// EndTextSize is the font size of the end-of-race message, in pixels.
const EndTextSize = 20

// DrawOp is a single draw instruction in play-field pixel coordinates.
type DrawOp struct {
	Kind   OpKind
	Sprite Sprite    // Image to sample (OpSprite)
	Src    core.Rect // Region of the image to sample (OpSprite)
	Pos    core.Vec  // Top-left destination
	Scale  float64   // Destination scale for the sampled region (OpSprite)
	Text   string    // Message (OpText)
	Size   int       // Font size (OpText)
}

// Frame is the ordered draw list for one frame, back to front.
type Frame struct {
	Ops     []DrawOp
	State   RaceState
	Paused  bool
	Elapsed float64
	Width   int // Play-field width in pixels
	Height  int // Play-field height in pixels
}

// Sprites returns only the image draws of the frame.
func (f Frame) Sprites() []DrawOp {
	var ops []DrawOp
	for _, op := range f.Ops {
		if op.Kind == OpSprite {
			ops = append(ops, op)
		}
	}
	return ops
}

// Text returns the first text draw of the frame, if any.
func (f Frame) Text() (DrawOp, bool) {
	for _, op := range f.Ops {
		if op.Kind == OpText {
			return op, true
		}
	}
	return DrawOp{}, false
}

// Frame builds the draw list for the current state. Background layers are
// always drawn. A running race adds the nebulae and then the player, using
// the jump sheet while airborne; an ended race adds only its message.
func (g *Game) Frame() Frame {
	f := Frame{
		State:   g.state,
		Paused:  g.paused,
		Elapsed: g.elapsed,
		Width:   g.cfg.Window.Width,
		Height:  g.cfg.Window.Height,
		Ops:     make([]DrawOp, 0, 2*len(g.layers)+len(g.nebulae)+1),
	}

	for _, l := range g.layers {
		for _, pos := range l.Positions() {
			f.Ops = append(f.Ops, DrawOp{
				Kind:   OpSprite,
				Sprite: Sprite(l.Name),
				Src:    l.Source(),
				Pos:    pos,
				Scale:  l.Scale,
			})
		}
	}

	if g.state.Terminal() {
		f.Ops = append(f.Ops, DrawOp{
			Kind: OpText,
			Text: g.state.Message(),
			Pos:  core.Vec{X: float64(g.cfg.Window.Width / 4), Y: float64(g.cfg.Window.Height / 2)},
			Size: EndTextSize,
		})
		return f
	}

	for _, n := range g.nebulae {
		f.Ops = append(f.Ops, DrawOp{
			Kind:   OpSprite,
			Sprite: SpriteNebula,
			Src:    n.Anim.Rect,
			Pos:    n.Pos,
			Scale:  1,
		})
	}

	player := DrawOp{Kind: OpSprite, Sprite: SpriteRun, Src: g.run.Rect, Pos: g.player.Pos, Scale: 1}
	if !g.player.Grounded {
		player.Sprite = SpriteJump
		player.Src = g.jump.Rect
	}
	f.Ops = append(f.Ops, player)
	return f
}
