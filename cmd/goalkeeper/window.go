package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goalkeeper/internal/platform/window"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play. The mode defaults to "goalkeeper".

Controls:
  Up/W       - Move keeper up
  Down/S     - Move keeper down
  Space/P    - Pause
  Click/R    - Restart (after game over)
  Q          - Quit

Examples:
  goalkeeper window
  goalkeeper window goalkeeper_classic --width 1600 --height 832`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	defaults := window.DefaultOptions()
	windowCmd.Flags().IntVar(&flagWidth, "width", defaults.Width, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", defaults.Height, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'goalkeeper list' to see available modes", err)
	}
	game, ok := created.(window.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be played in a window", gameID)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := window.DefaultOptions()
	opts.Width = flagWidth
	opts.Height = flagHeight
	opts.TickRate = flagFPS
	opts.Seed = flagSeed
	opts.Logger = logger

	return window.Run(game, opts)
}
