package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(score float64, variant string, duration time.Duration) (int64, error)
}

// Options configure a Model.
type Options struct {
	Game    *flappy.Game
	Field   config.FlappyField
	Variant string
	FPS     int
	Runs    RunRecorder // nil: runs are not recorded
	Scores  RunLister   // nil: the scoreboard is empty
	Logger  *log.Logger // nil discards logs
	Width   int         // Initial terminal size, until the first resize
	Height  int
}

// Model is the Bubble Tea model that drives one game. It turns key presses
// into game input, schedules ticks while the game wants frames and renders
// each snapshot.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	runs       RunRecorder
	scores     RunLister
	logger     *log.Logger
	field      config.FlappyField
	variant    string
	fps        int
	epoch      time.Time
	viewport   Viewport
	width      int
	height     int
	ticking    bool // A tick is scheduled
	notice     string
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model and sizes the game for the initial terminal.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	m := Model{
		game:    opts.Game,
		screen:  core.NewScreen(0, 0),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		runs:    opts.Runs,
		scores:  opts.Scores,
		logger:  logger,
		field:   opts.Field,
		variant: opts.Variant,
		fps:     fps,
		epoch:   time.Now(),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init initializes the model. Nothing ticks until the player activates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionActivate:
		m.game.Activate()
		return m.armTick()

	case core.ActionScores:
		if m.game.State() != flappy.StateRunning {
			sb := NewScoreboardModel(m.scores, m.width, m.height)
			m.scoreboard = &sb
		}
	}
	return m, nil
}

// armTick schedules a tick unless one is already pending.
func (m Model) armTick() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.fps)
}

// handleTick advances the game and re-arms only while it wants frames.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.ticking = false

	res := m.game.Tick(m.nowMs(t))
	m.handleResult(res)

	if m.game.WantsFrames() {
		return m.armTick()
	}
	return m, nil
}

// handleResult reacts to the events of one tick.
func (m *Model) handleResult(res flappy.StepResult) {
	for _, e := range res.Events {
		switch e {
		case flappy.EventStarted:
			m.notice = ""
		case flappy.EventEnded:
			m.recordRun()
		case flappy.EventPersistFailed:
			m.notice = "high score not saved"
		}
	}
}

// recordRun stores the run that just ended. Failures are logged only.
func (m *Model) recordRun() {
	if m.runs == nil {
		return
	}
	snap := m.game.Snapshot()
	duration := time.Duration(snap.ElapsedMs * float64(time.Millisecond))
	if _, err := m.runs.SaveRun(snap.Current, m.variant, duration); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// nowMs converts a wall-clock tick time to milliseconds since the model started.
func (m Model) nowMs(t time.Time) float64 {
	return float64(t.Sub(m.epoch)) / float64(time.Millisecond)
}

// resize recomputes the layout and hands the new field to the game. A run in
// progress keeps its geometry until it restarts.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.screen.Resize(width, height-footerRows)
	m.help.Width = width

	field, vp := ComputeLayout(width, height, m.field)
	m.viewport = vp
	m.game.SetField(field)
}

// updateScoreboard forwards a message to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	DrawFrame(m.screen, Frame{
		Snapshot: m.game.Snapshot(),
		Viewport: m.viewport,
		MinCols:  m.field.MinCols,
		MinRows:  m.field.MinRows,
		Notice:   m.notice,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
