package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/race"
	"github.com/vovakirdan/dasher/internal/render"
)

// dashHold is how long a dash key press counts as held. Terminals report
// key presses but not releases, so holding the key relies on key repeat
// arriving within this window.
const dashHold = 150 * time.Millisecond

// chromeRows is the number of rows taken by the status line and help bar.
const chromeRows = 2

var (
	statusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	outcomeStyle = map[race.RaceState]lipgloss.Style{
		race.Playing: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		race.Lost:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		race.Won:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
)

// Options configures a terminal race session.
type Options struct {
	Config     config.DasherConfig
	Preset     config.DifficultyPreset
	ConfigPath string // File to watch for changes; empty disables reloading
	TickRate   int    // Frames per second
	Width      int    // Initial terminal width
	Height     int    // Initial terminal height
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a race session. A finished race can be
// restarted any number of times; each restart picks up a reloaded config.
type Model struct {
	opts      Options
	logger    *log.Logger
	game      *race.Game
	renderer  *render.Renderer
	screen    *core.Screen
	clock     *core.Clock
	keys      KeyMap
	help      help.Model
	history   table.Model
	results   []Result
	input     core.InputFrame
	dashUntil time.Time
	pending   *config.DasherConfig // Reloaded config for the next race
	watcher   *config.Watcher
	now       func() time.Time
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model running a race with opts.Config.
func NewModel(opts Options) Model {
	runtime := core.DefaultConfig()
	if opts.Width <= 0 {
		opts.Width = runtime.ScreenW
	}
	if opts.Height <= 0 {
		opts.Height = runtime.ScreenH
	}
	if opts.TickRate <= 0 {
		opts.TickRate = runtime.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		opts:     opts,
		logger:   logger,
		game:     race.New(opts.Config),
		renderer: render.New(assets.Build(opts.Config)),
		screen:   core.NewScreen(opts.Width, max(opts.Height-chromeRows, 0)),
		clock:    core.NewClock(),
		keys:     DefaultKeyMap(),
		help:     h,
		history:  newHistoryTable(opts.Width),
		input:    core.NewInputFrame(),
		now:      time.Now,
		width:    opts.Width,
		height:   opts.Height,
	}
	return m
}

// WithWatcher makes the model reload the config whenever w reports a change.
func (m Model) WithWatcher(w *config.Watcher) Model {
	m.watcher = w
	return m
}

// Init starts the tick loop and, if configured, the config watcher.
func (m Model) Init() tea.Cmd {
	m.logger.Info("race started", "preset", m.opts.Preset, "nebulae", m.opts.Config.Nebulae.Count)
	return tea.Batch(tickCmd(m.opts.TickRate), waitForChange(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.SetWidth(min(msg.Width, 40))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		return m.handleConfigChange(msg)

	case watchErrMsg:
		m.logger.Warn("config watcher error", "error", msg.err)
		return m, waitForChange(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionDash:
		m.dashUntil = m.now().Add(dashHold)
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	if now.Before(m.dashUntil) {
		m.input.Set(core.ActionDash)
	}

	if m.input.Has(core.ActionRestart) && m.game.State().Terminal() {
		m.restart()
	} else {
		before := m.game.State()
		after := m.game.Update(dt, m.input)
		if !before.Terminal() && after.Terminal() {
			m.recordResult()
		}
	}

	m.input.Clear()
	return m, tickCmd(m.opts.TickRate)
}

// restart starts a new race, on the reloaded config if there is one. The
// first frame of the new race has a zero delta.
func (m *Model) restart() {
	if m.pending != nil {
		m.opts.Config = *m.pending
		m.pending = nil
		m.game = race.New(m.opts.Config)
		m.renderer = render.New(assets.Build(m.opts.Config))
		m.logger.Info("race started with reloaded config", "preset", m.opts.Preset)
	} else {
		m.game.Reset()
		m.logger.Info("race started", "preset", m.opts.Preset)
	}
	m.clock.Reset()
	m.dashUntil = time.Time{}
}

// recordResult adds the just-finished race to the session history.
func (m *Model) recordResult() {
	r := Result{
		Outcome: m.game.State(),
		Elapsed: m.game.Elapsed(),
		Frames:  m.game.Frames(),
	}
	m.results = append(m.results, r)
	m.history.SetRows(historyTableRows(m.results))
	m.logger.Info("race finished",
		"outcome", r.Outcome,
		"elapsed", fmt.Sprintf("%.2fs", r.Elapsed),
		"frames", r.Frames,
	)
}

// handleConfigChange loads a changed config file and keeps it for the next
// race. A file that fails to load is reported and ignored.
func (m Model) handleConfigChange(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	cfg, err := config.LoadFile(msg.Path)
	if err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "error", err)
		return m, waitForChange(m.watcher)
	}
	config.ApplyPreset(&cfg, m.opts.Preset)
	m.pending = &cfg
	m.logger.Info("config reloaded, applies on restart", "path", msg.Path)
	return m, waitForChange(m.watcher)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".dasher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dasher_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// playRows returns the number of rows left for the play field.
func (m Model) playRows() int {
	rows := m.height - chromeRows
	if m.showHistory() {
		rows -= historyRows + 2 // table header and border
	}
	return max(rows, 0)
}

// showHistory reports whether the session history is shown.
func (m Model) showHistory() bool {
	return m.game.State().Terminal() && len(m.Results()) > 0
}

// statusLine renders the line above the play field.
func (m Model) statusLine() string {
	state := m.game.State()
	label := state.String()
	if m.game.Paused() {
		label = "Paused"
	}

	parts := []string{
		statusStyle.Render("DASHER"),
		outcomeStyle[state].Render(label),
		fmt.Sprintf("%6.2fs", m.game.Elapsed()),
		fmt.Sprintf("finish %5.0fpx", max(m.game.FinishLine()-m.game.Player().Pos.X, 0)),
	}
	if m.opts.Preset != "" {
		parts = append(parts, dimStyle.Render("["+string(m.opts.Preset)+"]"))
	}
	if m.pending != nil {
		parts = append(parts, noticeStyle.Render("config reloaded, press r after this race"))
	}
	return strings.Join(parts, "  ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	m.screen.Resize(m.width, m.playRows())
	m.renderer.Draw(m.screen, m.game.Frame())
	b.WriteString(RenderScreen(m.screen))

	if m.showHistory() {
		b.WriteString("\n")
		b.WriteString(m.history.View())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Game returns the race being played.
func (m Model) Game() *race.Game {
	return m.game
}

// Results returns the finished races of the session.
func (m Model) Results() []Result {
	return m.results
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	m := NewModel(opts)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			m.logger.Warn("config watcher disabled", "error", err)
		} else {
			defer w.Close()
			m.logger.Info("watching config", "path", w.Path())
			m = m.WithWatcher(w)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
