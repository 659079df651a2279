package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Rows reserved around the board: the HUD above and the key legend below.
const (
	hudRows    = 1
	footerRows = 1
)

const (
	shortHelp = "? help  q quit"
	fullHelp  = "arrows/wasd/hjkl move  ? help  q/esc quit"
)

// Options configures a Console.
type Options struct {
	Palette   snake.Palette
	CellWidth int
	Logger    *log.Logger // nil discards
}

// Screen is the part of tcell.Screen the console drives.
type Screen interface {
	Canvas
	Clear()
	Show()
	Size() (width, height int)
	PollEvent() tcell.Event
}

// Console runs one game on a tcell screen.
type Console struct {
	screen    Screen
	game      *snake.Game
	config    core.RuntimeConfig
	palette   snake.Palette
	cellWidth int
	logger    *log.Logger
	phase     snake.Phase
	showHelp  bool
}

// New creates a console for game. The screen must already be initialized.
func New(screen Screen, game *snake.Game, cfg core.RuntimeConfig, opts Options) *Console {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		screen:    screen,
		game:      game,
		config:    cfg,
		palette:   opts.Palette,
		cellWidth: max(opts.CellWidth, 1),
		logger:    logger,
		phase:     game.Phase(),
	}
}

// Action translates a key event into a logical action.
// Keys without a binding map to ActionOther.
func Action(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case '?':
			return core.ActionHelp
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionOther
}

// HandleEvent processes one tcell event. It returns false when the player quits.
func (c *Console) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := Action(ev)
		switch action {
		case core.ActionQuit:
			c.logger.Info("quit", "length", c.game.Snake().Len())
			return false
		case core.ActionHelp:
			c.showHelp = !c.showHelp
		default:
			if action.IsMovement() {
				c.game.HandleAction(action)
				c.observePhase()
			}
		}

	case *tcell.EventResize:
		w, h := c.screen.Size()
		c.config.ScreenW, c.config.ScreenH = w, h
		c.logger.Debug("resize", "width", w, "height", h, "fits", !c.tooSmall())
	}

	return true
}

// Frame advances the game by dt and redraws.
func (c *Console) Frame(dt time.Duration) {
	c.game.Update(dt)
	c.observePhase()
	c.Draw()
}

func (c *Console) observePhase() {
	phase := c.game.Phase()
	if phase == c.phase {
		return
	}
	c.phase = phase

	if phase == snake.PhaseGameOver {
		c.logger.Info("round over", "outcome", c.game.Outcome(), "length", c.game.Snake().Len())
		c.logger.Debug("final state", "state", c.game.DebugState())
		return
	}
	c.logger.Info("round restarted")
}

func (c *Console) requiredSize() (w, h int) {
	return c.game.Width() * c.cellWidth, c.game.Height() + hudRows + footerRows
}

func (c *Console) tooSmall() bool {
	if c.config.ScreenW <= 0 || c.config.ScreenH <= 0 {
		return false
	}
	w, h := c.requiredSize()
	return c.config.ScreenW < w || c.config.ScreenH < h
}

// Draw renders the current frame.
func (c *Console) Draw() {
	c.screen.Clear()
	defer c.screen.Show()

	if c.tooSmall() {
		w, h := c.requiredSize()
		mid := c.config.ScreenH / 2
		drawText(c.screen, 0, mid-1, "Window too small", tcell.StyleDefault)
		drawText(c.screen, 0, mid, fmt.Sprintf("Need %dx%d", w, h), tcell.StyleDefault)
		return
	}

	hud := Style(core.ColorDefault).Bold(true)
	if c.game.Phase() == snake.PhaseGameOver {
		hud = Style(c.palette.Overlay).Bold(true)
	}
	drawText(c.screen, 0, 0, c.game.Status(), hud)

	Paint(c.screen, c.game.DrawRequest().Commands(c.palette), c.cellWidth, hudRows)

	help := shortHelp
	if c.showHelp {
		help = fullHelp
	}
	drawText(c.screen, 0, hudRows+c.game.Height(), help, Style(core.ColorGray))
}

// Loop polls events on a goroutine and advances the game on a ticker until
// the player quits or ctx is done.
func (c *Console) Loop(ctx context.Context) error {
	interval := time.Second / time.Duration(c.config.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	c.config.ScreenW, c.config.ScreenH = c.screen.Size()
	c.Draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !c.HandleEvent(ev) {
				return nil
			}
			c.Draw()

		case now := <-ticker.C:
			c.Frame(now.Sub(last))
			last = now
		}
	}
}

// Run opens the terminal, runs game until the player quits, and restores
// the terminal.
func Run(ctx context.Context, game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	return New(screen, game, cfg, opts).Loop(ctx)
}
