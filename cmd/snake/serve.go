package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeFit    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --fit                     # Shrink boards to each client's terminal

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config: :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config: 30m)")
	serveCmd.Flags().BoolVar(&flagServeFit, "fit", false, "Shrink boards to each client's terminal")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("serving", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "frame", cfg.TickRate())

	server, err := tui.NewSSHServer(serverConfig(cfg, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig fills the SSH server defaults from a validated config.
func serverConfig(cfg config.Config, logger *log.Logger) tui.SSHServerConfig {
	sc := tui.DefaultSSHServerConfig()
	if cfg.SSH.Address != "" {
		sc.Address = cfg.SSH.Address
	}
	if cfg.SSH.IdleTimeout > 0 {
		sc.IdleTimeout = cfg.SSH.IdleTimeout
	}
	sc.HostKeyPath = cfg.SSH.HostKey
	sc.BoardWidth, sc.BoardHeight = cfg.Board.Width, cfg.Board.Height
	sc.FitBoard = flagServeFit
	sc.TickRate = cfg.Display.FPS
	sc.CellWidth = cfg.Display.CellWidth
	if palette, err := cfg.Palette(); err == nil {
		sc.Palette = palette
	}
	sc.Logger = logger
	return sc
}
