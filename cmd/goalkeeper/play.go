package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goalkeeper/internal/platform/tui"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to "goalkeeper".

Controls:
  Up/W/K     - Move keeper up
  Down/S/J   - Move keeper down
  Space/P    - Pause
  R/Click    - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ball, faster and taller keeper
  normal - Values from the config file
  hard   - Faster ball, slower and shorter keeper

Logs are discarded unless --log-file is given, since the game owns the terminal.

Examples:
  goalkeeper play
  goalkeeper play goalkeeper_classic
  goalkeeper play --difficulty hard
  goalkeeper play --config ./my-goalkeeper.yaml --log-file ./goalkeeper.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'goalkeeper list' to see available modes", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	width, height := terminalSize()
	if err := tui.Run(game, runtimeConfig(width, height), tui.Options{Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
