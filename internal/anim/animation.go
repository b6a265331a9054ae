// Package anim implements time-driven sprite-sheet animation.
// Frames are laid out left-to-right in a sheet; an AnimationState selects
// one frame rectangle and advances it as elapsed time accumulates.
package anim

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/core"
)

// AnimationState is the frame/time bookkeeping for one sprite sheet.
type AnimationState struct {
	Rect          core.Rect // Frame rectangle within the sheet
	Frame         int       // Index of the next frame to commit
	FrameDuration float64   // Seconds per frame, must be > 0
	Elapsed       float64   // Seconds accumulated since the last frame switch
}

// Advance accumulates dt and, once a full frame duration has elapsed, commits
// the current frame's rectangle and moves on to the next frame, wrapping past
// maxFrame back to 0. At most one frame is advanced per call, however large dt
// is. The input state is not modified.
//
// Advance panics if dt is negative, maxFrame is negative or the frame duration
// is not positive; all three are caller bugs.
func Advance(s AnimationState, dt float64, maxFrame int) AnimationState {
	if dt < 0 {
		panic(fmt.Sprintf("anim: negative delta time %v", dt))
	}
	if maxFrame < 0 {
		panic(fmt.Sprintf("anim: negative max frame %d", maxFrame))
	}
	if s.FrameDuration <= 0 {
		panic(fmt.Sprintf("anim: non-positive frame duration %v", s.FrameDuration))
	}

	s.Elapsed += dt
	if s.Elapsed >= s.FrameDuration {
		s.Elapsed = 0
		s.Rect.X = float64(s.Frame) * s.Rect.W
		s.Frame++
		if s.Frame > maxFrame {
			s.Frame = 0
		}
	}
	return s
}
