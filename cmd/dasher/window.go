package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Race in a desktop window",
	Long: `Open a window and race with the full sprite sheets.

Controls:
  Space  - Jump
  Q      - Dash (hold, while airborne)
  P      - Pause
  R      - Restart (after the race ends)
  Esc    - Quit

Examples:
  dasher window
  dasher window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per play-field pixel")
}

func runWindow(_ *cobra.Command, _ []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", sess.source, "preset", sess.preset)

	return window.Run(window.Options{
		Config:   sess.cfg,
		Preset:   sess.preset,
		TickRate: flagFPS,
		Scale:    flagScale,
		Logger:   logger,
	})
}
