package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/logging"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// HostOptions configures where a session reports to.
type HostOptions struct {
	Store  *storage.Store // Nil disables the run journal
	Logger *log.Logger
	Source string     // Journal source tag: play or serve
	Clock  core.Clock // Nil uses the system clock
}

// restartFlag is shared between the engine callback and the value model.
type restartFlag struct {
	requested bool
}

// Model is the Bubble Tea model hosting one climber session.
type Model struct {
	engine   *climber.Engine
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	source   string
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    *HoldTracker
	actions  core.InputFrame // Host actions applied on the next tick
	clock    core.Clock
	restart  *restartFlag
	lastTick *int64
	paused   bool
	quitting bool
}

// NewModel creates a Bubble Tea model running a fresh session.
func NewModel(game config.ClimberConfig, cfg core.RuntimeConfig, opts HostOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Source == "" {
		opts.Source = "play"
	}

	flag := &restartFlag{}
	engine := climber.NewEngine(game, cfg.Seed,
		climber.WithLogger(opts.Logger),
		climber.WithRestarter(climber.RestartFunc(func() { flag.requested = true })),
	)

	last := opts.Clock.NowMs()
	return Model{
		engine:   engine,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   opts.Logger,
		source:   opts.Source,
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    NewHoldTracker(game.Input.HoldWindowMs),
		actions:  core.NewInputFrame(),
		clock:    opts.Clock,
		restart:  flag,
		lastTick: &last,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		now := m.clock.NowMs()
		if m.engine.State() == climber.StatePlaying {
			m.engine.Quit(now)
		}
		m.record()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause, core.ActionRestart:
		m.actions.Set(action)
	default:
		if !m.paused {
			m.input.Press(action, m.clock.NowMs())
		}
	}
	return m, nil
}

// step runs one simulation tick against the wall clock.
func (m *Model) step() {
	now := m.clock.NowMs()
	delta := now - *m.lastTick
	*m.lastTick = now

	playing := m.engine.State() == climber.StatePlaying
	if m.actions.Has(core.ActionPause) && playing {
		m.paused = !m.paused
		m.input.Reset()
	}
	restart := m.actions.Has(core.ActionRestart) && !playing
	m.actions.Clear()
	if restart {
		m.restartSession()
		return
	}
	if m.paused {
		return
	}

	m.engine.Tick(delta, m.input.Poll(now), now)
	if m.restart.requested {
		m.restartSession()
	}
}

// restartSession journals the finished run and starts a new one.
func (m *Model) restartSession() {
	m.record()
	m.restart.requested = false
	m.input.Reset()
	m.engine.RestartWithSeed(time.Now().UnixNano())
}

// record saves the current session to the run journal, once per session.
func (m *Model) record() {
	if m.store == nil {
		return
	}
	stats := m.engine.Stats()
	if stats.Ticks == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Seed:       stats.Seed,
		Score:      stats.Score,
		Level:      stats.Level,
		Rows:       stats.Rows,
		Cause:      stats.Cause.String(),
		DurationMs: stats.ElapsedMs,
		Source:     m.source,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	climber.Render(m.engine.Frame(), m.screen, m.paused)

	dir, err := config.DataDir("screenshots")
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("climber_%d_%s.txt", m.engine.Seed(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	climber.Render(m.engine.Frame(), m.screen, m.paused)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game config.ClimberConfig, cfg core.RuntimeConfig, opts HostOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
