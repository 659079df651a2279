package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Options configures a Model.
type Options struct {
	Palette   snake.Palette
	CellWidth int
	Logger    *log.Logger // nil discards
}

// Model is the Bubble Tea model hosting one snake game.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	palette   snake.Palette
	cellWidth int
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	lastTick  time.Time
	phase     snake.Phase
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH hold the terminal size until the first resize.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cellWidth := max(opts.CellWidth, 1)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := RequiredSize(game.Width(), game.Height(), cellWidth)
	return Model{
		game:      game,
		screen:    core.NewScreen(w, h-footerRows),
		config:    cfg,
		palette:   opts.Palette,
		cellWidth: cellWidth,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		phase:     game.Phase(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return nextFrame(frameInterval(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "length", m.game.Snake().Len())
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action.IsMovement() {
		m.game.HandleAction(action)
		m.observePhase()
	}
	return m, nil
}

// handleResize records the terminal size; the board keeps its dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "fits", !m.tooSmall(m.help.View(m.keys)))
	return m, nil
}

// handleTick advances the simulation by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	m.game.Update(dt)
	m.observePhase()

	return m, nextFrame(frameInterval(m.config.TickRate))
}

// observePhase logs phase transitions.
func (m *Model) observePhase() {
	phase := m.game.Phase()
	if phase == m.phase {
		return
	}
	m.phase = phase

	if phase == snake.PhaseGameOver {
		m.logger.Info("round over", "outcome", m.game.Outcome(), "length", m.game.Snake().Len())
		m.logger.Debug("final state", "state", m.game.DebugState())
		return
	}
	m.logger.Info("round restarted")
}

// requiredSize is RequiredSize with the footer height taken from the
// rendered help rather than footerRows.
func (m Model) requiredSize(footer string) (w, h int) {
	w, h = RequiredSize(m.game.Width(), m.game.Height(), m.cellWidth)
	return w, h - footerRows + lipgloss.Height(footer)
}

// tooSmall reports whether the known terminal size cannot fit the board.
func (m Model) tooSmall(footer string) bool {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return false
	}
	w, h := m.requiredSize(footer)
	return m.config.ScreenW < w || m.config.ScreenH < h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.tooSmall(footer) {
		w, h := m.requiredSize(footer)
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
		m.screen.Clear()
		mid := m.config.ScreenH / 2
		m.screen.DrawTextCentered(mid-1, "Window too small", core.ColorDefault)
		m.screen.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorDefault)
		return RenderScreen(m.screen)
	}

	w, h := RequiredSize(m.game.Width(), m.game.Height(), m.cellWidth)
	m.screen.Resize(w, h-footerRows)
	m.screen.Clear()
	hudColor := core.ColorDefault
	if m.game.Phase() == snake.PhaseGameOver {
		hudColor = m.palette.Overlay
	}
	m.screen.DrawText(0, 0, m.game.Status(), hudColor)
	Paint(m.screen, m.game.DrawRequest().Commands(m.palette), m.cellWidth, hudRows)

	return RenderScreen(m.screen) + "\n" + footer
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
