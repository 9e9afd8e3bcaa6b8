package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/falling-rocks/internal/core"
	"github.com/vovakirdan/falling-rocks/internal/registry"
)

// endScreenGrace is how long keys are ignored after a round ends, so a key
// held while dying does not skip the end screen.
const endScreenGrace = time.Second

// RoundRecord describes one finished round of a session.
type RoundRecord struct {
	Variant  string
	Preset   string
	Score    int
	Survived time.Duration
	Quit     bool // ended by the player rather than by health
	EndedAt  time.Time
}

// Options configures a play session.
type Options struct {
	Logger *log.Logger
	Preset string // shown in round records
}

// configErrorer is implemented by games that fall back to default settings.
type configErrorer interface {
	ConfigError() error
}

// Model is the Bubble Tea model for playing one game variant. The Update
// loop is the only goroutine that touches the game: key messages fill a
// single-command slot and each tick consumes it.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	clock     *core.Stopwatch
	config    core.RuntimeConfig
	fixedSeed bool
	pending   core.InputFrame
	state     core.GameState
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	preset    string
	records   []RoundRecord
	endedAt   time.Time
	wall      func() time.Time
	quitting  bool
}

// NewModel creates a model and starts the first round.
// A zero seed picks a new time-based seed for every round.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
		pending:   core.NewInputFrame(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		preset:    opts.Preset,
		wall:      time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.startRound()
	return m
}

// runtime is the config handed to the game: the last row belongs to the
// help footer.
func (m Model) runtime() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = core.Max(1, rc.ScreenH-1)
	return rc
}

func (m *Model) startRound() {
	if !m.fixedSeed {
		m.config.Seed = m.wall().UnixNano()
	}
	m.game.Reset(m.runtime())
	m.state = m.game.State()
	m.pending.Clear()
	m.clock = core.NewStopwatch()

	if ce, ok := m.game.(configErrorer); ok && ce.ConfigError() != nil {
		m.logger.Warn("using default settings", "game", m.game.ID(), "error", ce.ConfigError())
	}
	m.logger.Info("round started", "game", m.game.ID(), "preset", m.preset, "seed", m.config.Seed)
}

func (m *Model) endRound() {
	m.endedAt = m.wall()
	cause := "health"
	if m.state.Quit {
		cause = "quit"
	}
	m.records = append(m.records, RoundRecord{
		Variant:  m.game.ID(),
		Preset:   m.preset,
		Score:    m.state.Score,
		Survived: m.state.Elapsed,
		Quit:     m.state.Quit,
		EndedAt:  m.endedAt,
	})
	m.logger.Info("round over", "game", m.game.ID(), "score", m.state.Score,
		"survived", m.state.Elapsed.Round(time.Millisecond), "cause", cause)
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey stores the command for the next tick. Only the latest command
// between two ticks is kept.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)

	if m.state.GameOver {
		if m.wall().Before(m.endedAt.Add(endScreenGrace)) {
			return m, nil
		}
		switch action {
		case core.ActionRestart:
			m.startRound()
			return m, tickCmd(m.config.TickRate)
		case core.ActionQuit, core.ActionConfirm:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case core.ActionNone, core.ActionRestart, core.ActionConfirm:
		return m, nil
	}
	m.pending.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer and tells the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	m.help.Width = msg.Width

	m.game.Resize(m.runtime())

	// Variants sized to the terminal restart their round on resize.
	if st := m.game.State(); !st.GameOver && st.Elapsed < m.state.Elapsed {
		m.state = st
		m.clock = core.NewStopwatch()
	}
	return m, nil
}

// handleTick runs one simulation step at the clock's current time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}

	now := m.clock.Now()
	result := m.game.Step(now, core.FrameOf(m.pending.Take()))
	m.state = result.State

	if m.state.Paused {
		if m.clock.Running() {
			m.clock.Pause()
			m.logger.Debug("paused", "at", now)
		}
	} else if !m.clock.Running() {
		m.clock.Resume()
		m.logger.Debug("resumed", "at", now)
	}

	for _, ev := range result.Events {
		if ev.Kind == core.EventRoundOver {
			continue
		}
		m.logger.Debug(ev.Kind.String(), "at", ev.At, "slot", ev.Slot, "column", ev.Column, "value", ev.Value)
	}

	// Both health loss and the exit command land on the end screen.
	if m.state.GameOver {
		m.endRound()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the game screen and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.state.GameOver {
		footer = m.help.View(endScreenKeys(m.keys))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Records returns the rounds finished so far.
func (m Model) Records() []RoundRecord {
	return m.records
}

// Run plays the game until the player quits and returns the finished rounds.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) ([]RoundRecord, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil, nil
	}
	return m.Records(), nil
}
