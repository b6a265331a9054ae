package config

import (
	"errors"
	"fmt"
)

// Validate checks every constant a race relies on and returns all
// violations joined together.
func (c DasherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size %dx%d must be positive", c.Window.Width, c.Window.Height)

	check(c.Physics.Gravity > 0, "physics.gravity %v must be positive", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse %v must be negative (upward)", c.Physics.JumpImpulse)
	check(c.Physics.DashVelocity >= 0, "physics.dash_velocity %v must not be negative", c.Physics.DashVelocity)

	sheets := []struct {
		name string
		err  error
	}{
		{"player.sheet", c.Player.Sheet.Validate()},
		{"player.jump_sheet", c.Player.JumpSheet.Validate()},
		{"nebulae.sheet", c.Nebulae.Sheet.Validate()},
	}
	for _, sh := range sheets {
		if sh.err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", sh.name, sh.err))
		}
	}

	check(c.Player.FrameDuration > 0, "player.frame_duration %v must be positive", c.Player.FrameDuration)
	check(c.Player.JumpFrameDuration > 0, "player.jump_frame_duration %v must be positive", c.Player.JumpFrameDuration)
	check(c.Player.MaxFrame >= 0 && c.Player.MaxFrame < max(c.Player.Sheet.Frames(), 1),
		"player.max_frame %d outside sheet of %d frames", c.Player.MaxFrame, c.Player.Sheet.Frames())
	check(c.Player.JumpMaxFrame >= 0 && c.Player.JumpMaxFrame < max(c.Player.JumpSheet.Frames(), 1),
		"player.jump_max_frame %d outside sheet of %d frames", c.Player.JumpMaxFrame, c.Player.JumpSheet.Frames())

	check(c.Nebulae.Count > 0, "nebulae.count %d must be positive", c.Nebulae.Count)
	check(c.Nebulae.Spacing >= 0, "nebulae.spacing %v must not be negative", c.Nebulae.Spacing)
	check(c.Nebulae.Velocity < 0, "nebulae.velocity %v must be negative (leftward)", c.Nebulae.Velocity)
	check(c.Nebulae.FrameDuration > 0, "nebulae.frame_duration %v must be positive", c.Nebulae.FrameDuration)
	check(c.Nebulae.MaxFrame >= 0 && c.Nebulae.MaxFrame < max(c.Nebulae.Sheet.Columns, 1),
		"nebulae.max_frame %d outside sheet row of %d frames", c.Nebulae.MaxFrame, c.Nebulae.Sheet.Columns)

	pad := c.Collision.Padding
	check(pad >= 0, "collision.padding %v must not be negative", pad)
	check(2*pad < c.Player.Sheet.FrameWidth() && 2*pad < c.Player.Sheet.FrameHeight() &&
		2*pad < c.Nebulae.Sheet.FrameWidth() &&
		2*pad < c.Nebulae.Sheet.FrameHeight(),
		"collision.padding %v leaves no collision area", pad)

	check(c.Background.Scale > 0, "background.scale %v must be positive", c.Background.Scale)
	for i, l := range c.Background.Layers {
		check(l.Width > 0 && l.Height > 0, "background.layers[%d] size %dx%d must be positive", i, l.Width, l.Height)
		check(l.Speed >= 0, "background.layers[%d].speed %v must not be negative", i, l.Speed)
	}

	return errors.Join(errs...)
}
