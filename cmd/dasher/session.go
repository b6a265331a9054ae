package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher/internal/config"
)

// session is the configuration shared by every command.
type session struct {
	cfg    config.DasherConfig
	source string // File the config came from, or config.SourceEmbedded
	preset config.DifficultyPreset
}

// loadSession resolves the config file and applies the difficulty preset.
func loadSession() (session, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return session{}, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}

	cfg, source, err := config.Resolve(flagConfig)
	if err != nil {
		return session{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return session{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}

	return session{cfg: cfg, source: source, preset: preset}, nil
}

// watchPath returns the file to watch for config changes, or empty when the
// config is embedded.
func (s session) watchPath() string {
	if s.source == config.SourceEmbedded {
		return ""
	}
	return s.source
}

// newLogger creates the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close function releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           level,
	})
	return logger, closeFn, nil
}
