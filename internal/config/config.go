// Package config provides YAML-based session configuration loading,
// validation and difficulty presets for the runner.
package config

import "github.com/vovakirdan/dasher/internal/anim"

// DasherConfig contains all session constants. It is fixed for the lifetime
// of a race; a reloaded config only applies to the next race.
type DasherConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Nebulae    NebulaConfig     `yaml:"nebulae"`
	Collision  CollisionConfig  `yaml:"collision"`
	Background BackgroundConfig `yaml:"background"`
	Behavior   BehaviorConfig   `yaml:"behavior"`
}

// WindowConfig defines the play-field dimensions in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines vertical kinematics and the dash.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // (pixels/s)/s, downward
	JumpImpulse  float64 `yaml:"jump_impulse"`  // pixels/s, negative = up
	DashVelocity float64 `yaml:"dash_velocity"` // pixels/s
}

// PlayerConfig defines the dasher's sprite sheets and animation timing.
type PlayerConfig struct {
	Sheet             anim.Sheet `yaml:"sheet"`
	JumpSheet         anim.Sheet `yaml:"jump_sheet"`
	FrameDuration     float64    `yaml:"frame_duration"`
	JumpFrameDuration float64    `yaml:"jump_frame_duration"`
	MaxFrame          int        `yaml:"max_frame"`
	JumpMaxFrame      int        `yaml:"jump_max_frame"`
}

// NebulaConfig defines the obstacle set.
type NebulaConfig struct {
	Count         int        `yaml:"count"`
	Spacing       float64    `yaml:"spacing"`  // pixels between consecutive spawns
	Velocity      float64    `yaml:"velocity"` // pixels/s, negative = leftward
	Sheet         anim.Sheet `yaml:"sheet"`
	FrameDuration float64    `yaml:"frame_duration"`
	MaxFrame      int        `yaml:"max_frame"`
}

// CollisionConfig defines the bounding-box inset.
type CollisionConfig struct {
	Padding float64 `yaml:"padding"`
}

// BackgroundConfig defines the parallax layers drawn behind the race.
type BackgroundConfig struct {
	Scale  float64       `yaml:"scale"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig defines one scrolling background layer.
type LayerConfig struct {
	Name   string  `yaml:"name"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // pixels/s, scrolled leftward
}

// BehaviorConfig toggles the classic quirks off.
type BehaviorConfig struct {
	RealDash    bool `yaml:"real_dash"`     // Dash actually moves the player
	FreezeOnEnd bool `yaml:"freeze_on_end"` // Stop obstacle motion once the race ends
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. The empty string and
// "normal" both leave the config untouched.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// ApplyPreset scales nebula speed and spacing for a difficulty preset.
// Easy nebulae are further apart; hard ones are faster, and spaced so that a
// full jump still fits between two of them.
func ApplyPreset(cfg *DasherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Nebulae.Spacing *= 1.5
	case DifficultyHard:
		cfg.Nebulae.Velocity *= 1.2
		cfg.Nebulae.Spacing *= 1.25
	}
}
