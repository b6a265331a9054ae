package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dasher/internal/core"
)

// KeyReader reports keyboard state for the current tick.
type KeyReader interface {
	// JustPressed reports whether the key went down this tick.
	JustPressed(k ebiten.Key) bool
	// Pressed reports whether the key is held.
	Pressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

// Sample builds the input frame for one tick. Jump, pause and restart are
// edge-triggered; dash is level-triggered and held with Q.
func Sample(keys KeyReader) core.InputFrame {
	in := core.NewInputFrame()
	if keys.JustPressed(ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if keys.Pressed(ebiten.KeyQ) {
		in.Set(core.ActionDash)
	}
	if keys.JustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if keys.JustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in
}
