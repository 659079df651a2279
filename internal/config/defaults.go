package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  32,
			Height: 20,
		},
		Display: DisplayConfig{
			FPS:       60,
			CellWidth: 2,
			Renderer:  RendererTea,
		},
		Colors: ColorConfig{
			Snake:   "bright_green",
			Food:    "bright_red",
			Border:  "blue",
			Overlay: "red",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
