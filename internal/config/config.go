// Package config provides YAML-based configuration loading for tui-snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid")

// Renderer names accepted by display.renderer.
const (
	RendererTea   = "tea"
	RendererTcell = "tcell"
)

// Config contains all tui-snake settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Colors  ColorConfig   `yaml:"colors"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig defines the board size in cells, border included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig defines how a front-end presents the board.
type DisplayConfig struct {
	FPS       int    `yaml:"fps"`
	CellWidth int    `yaml:"cell_width"` // Terminal columns per board cell
	Renderer  string `yaml:"renderer"`
}

// ColorConfig names the colors of the drawable elements.
type ColorConfig struct {
	Snake   string `yaml:"snake"`
	Food    string `yaml:"food"`
	Border  string `yaml:"border"`
	Overlay string `yaml:"overlay"`
}

// SSHConfig defines the SSH server settings.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Board.Width < snake.MinWidth || c.Board.Height < snake.MinHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalid, c.Board.Width, c.Board.Height, snake.MinWidth, snake.MinHeight)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}
	if c.Display.CellWidth != 1 && c.Display.CellWidth != 2 {
		return fmt.Errorf("%w: cell_width must be 1 or 2, got %d", ErrInvalid, c.Display.CellWidth)
	}
	switch c.Display.Renderer {
	case RendererTea, RendererTcell:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Display.Renderer)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: negative idle_timeout %s", ErrInvalid, c.SSH.IdleTimeout)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette resolves the configured color names.
func (c Config) Palette() (snake.Palette, error) {
	var p snake.Palette
	for _, f := range []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"snake", c.Colors.Snake, &p.Snake},
		{"food", c.Colors.Food, &p.Food},
		{"border", c.Colors.Border, &p.Border},
		{"overlay", c.Colors.Overlay, &p.Overlay},
	} {
		color, ok := core.ParseColor(f.name)
		if !ok {
			return snake.Palette{}, fmt.Errorf("%w: unknown %s color %q", ErrInvalid, f.key, f.name)
		}
		*f.dst = color
	}
	return p, nil
}

// TickRate returns the frame interval for the configured fps.
func (c Config) TickRate() time.Duration {
	if c.Display.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
