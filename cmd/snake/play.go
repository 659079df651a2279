package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagRenderer string
	flagFit      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Turn (or step forward)
  Any other key    - Step forward
  ?                - Toggle key help
  Q/Esc/Ctrl+C     - Quit

Renderers:
  tea    - Bubble Tea (default)
  tcell  - tcell, drawing straight to the terminal

Examples:
  snake play
  snake play --fit
  snake play --renderer tcell --fps 30
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Renderer: tea or tcell (default from config)")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the board to the terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRenderer != "" {
		cfg.Display.Renderer = flagRenderer
	}

	// Get terminal size early for --fit
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if flagFit {
		cfg.Board.Width, cfg.Board.Height = tui.FitBoard(width, height, cfg.Display.CellWidth)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := snake.New(cfg.Board.Width, cfg.Board.Height, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     seed,
	}
	palette, _ := cfg.Palette() // Checked by Validate

	logger.Info("starting game",
		"renderer", cfg.Display.Renderer,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"fps", cfg.Display.FPS,
		"frame", cfg.TickRate(),
		"seed", seed,
	)

	switch cfg.Display.Renderer {
	case config.RendererTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = console.Run(ctx, game, rc, console.Options{
			Palette:   palette,
			CellWidth: cfg.Display.CellWidth,
			Logger:    logger,
		})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		err = tui.Run(game, rc, tui.Options{
			Palette:   palette,
			CellWidth: cfg.Display.CellWidth,
			Logger:    logger,
		})
	}

	if err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game stopped", "length", game.Snake().Len())
}
