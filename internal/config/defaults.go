package config

import (
	_ "embed"

	"github.com/vovakirdan/dasher/internal/anim"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultConfig returns the classic game's constants.
func DefaultConfig() DasherConfig {
	return DasherConfig{
		Window: WindowConfig{
			Width:  512,
			Height: 250,
			Title:  "Dasher",
		},
		Physics: PhysicsConfig{
			Gravity:      1000,
			JumpImpulse:  -600,
			DashVelocity: 100,
		},
		Player: PlayerConfig{
			Sheet:             anim.Sheet{Width: 768, Height: 128, Columns: 6, Rows: 1},
			JumpSheet:         anim.Sheet{Width: 512, Height: 128, Columns: 4, Rows: 1},
			FrameDuration:     1.0 / 12.0,
			JumpFrameDuration: 1.0 / 6.0,
			MaxFrame:          5,
			JumpMaxFrame:      3,
		},
		Nebulae: NebulaConfig{
			Count:         10,
			Spacing:       300,
			Velocity:      -200,
			Sheet:         anim.Sheet{Width: 800, Height: 800, Columns: 8, Rows: 8},
			FrameDuration: 1.0 / 16.0,
			MaxFrame:      7,
		},
		Collision: CollisionConfig{
			Padding: 20,
		},
		Background: BackgroundConfig{
			Scale: 2,
			Layers: []LayerConfig{
				{Name: "far", Width: 256, Height: 192, Speed: 20},
				{Name: "mid", Width: 256, Height: 192, Speed: 40},
				{Name: "fore", Width: 352, Height: 192, Speed: 80},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
