package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in the terminal",
	Long: `Start a race in the terminal.

Controls:
  Space/Up   - Jump
  Q/D        - Dash (while airborne)
  P          - Pause
  R          - Restart (after the race ends)
  Ctrl+S     - Save a screenshot to ~/.dasher/screenshots
  Esc/Ctrl+C - Quit

Changes to the config file are picked up at the next restart.

Examples:
  dasher play
  dasher play --difficulty easy
  dasher play --config ./my-dasher.yaml --log-file dasher.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout and stderr while the race runs
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", sess.source, "preset", sess.preset)

	runtime := core.DefaultConfig()
	width, height := runtime.ScreenW, runtime.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(tui.Options{
		Config:     sess.cfg,
		Preset:     sess.preset,
		ConfigPath: sess.watchPath(),
		TickRate:   flagFPS,
		Width:      width,
		Height:     height,
		Logger:     logger,
	})
}
