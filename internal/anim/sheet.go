package anim

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/core"
)

// Sheet describes the geometry of a sprite sheet: its pixel size and how
// many frame columns and rows it is divided into.
type Sheet struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// FrameWidth returns the width of a single frame in pixels.
func (sh Sheet) FrameWidth() float64 {
	if sh.Columns <= 0 {
		return 0
	}
	return float64(sh.Width / sh.Columns)
}

// FrameHeight returns the height of a single frame in pixels.
func (sh Sheet) FrameHeight() float64 {
	if sh.Rows <= 0 {
		return 0
	}
	return float64(sh.Height / sh.Rows)
}

// Frames returns the number of frames the sheet holds.
func (sh Sheet) Frames() int {
	return sh.Columns * sh.Rows
}

// Validate reports a sheet whose frames would be empty.
func (sh Sheet) Validate() error {
	if sh.Width <= 0 || sh.Height <= 0 {
		return fmt.Errorf("anim: sheet size %dx%d must be positive", sh.Width, sh.Height)
	}
	if sh.Columns <= 0 || sh.Rows <= 0 {
		return fmt.Errorf("anim: sheet grid %dx%d must be positive", sh.Columns, sh.Rows)
	}
	if sh.Width < sh.Columns || sh.Height < sh.Rows {
		return fmt.Errorf("anim: sheet %dx%d too small for a %dx%d grid", sh.Width, sh.Height, sh.Columns, sh.Rows)
	}
	return nil
}

// NewState returns a frame-0 animation over the sheet's first row.
func NewState(sh Sheet, frameDuration float64) AnimationState {
	return AnimationState{
		Rect:          core.NewRect(0, 0, sh.FrameWidth(), sh.FrameHeight()),
		FrameDuration: frameDuration,
	}
}
