package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dasher/internal/config"
)

// ConfigChangedMsg reports that the watched config file changed on disk.
type ConfigChangedMsg struct {
	Path string
}

// watchErrMsg carries an error from the config watcher.
type watchErrMsg struct {
	err error
}

// waitForChange returns a command that blocks until the watcher reports a
// change or an error. It returns nil when w is nil, and the command yields
// nil once the watcher is closed.
func waitForChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}
