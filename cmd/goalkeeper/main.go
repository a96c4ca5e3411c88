// goalkeeper is a football arcade: keep the ball out of your net for as long as you can.
//
// Usage:
//
//	goalkeeper list              - List available game modes
//	goalkeeper play [mode]       - Play in the terminal
//	goalkeeper menu              - Pick a mode interactively in the terminal
//	goalkeeper window [mode]     - Play in a desktop window
//	goalkeeper serve             - Start SSH server for remote play
//	goalkeeper config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <name>   - Apply a difficulty preset (easy, normal, hard)
//	--log-level <level>   - Log level (debug, info, warn, error)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/core"
	"github.com/vovakirdan/goalkeeper/internal/games/goalkeeper"
)

const defaultMode = "goalkeeper"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goalkeeper",
	Short: "Football Arkanoid - keep the ball out of your net",
	Long: `Football Arkanoid is a one-button football arcade. A ball bounces around
the pitch; move the goalkeeper up and down to deflect it away from the goal.

Saves earn 100 points, a ball that slips past the far wall costs 50, and the
game ends when the score drops below zero.

Available commands:
  list     - Show the game modes
  play     - Play in the terminal
  menu     - Pick a mode interactively in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  goalkeeper play
  goalkeeper play goalkeeper_classic --difficulty hard
  goalkeeper window --seed 42
  goalkeeper serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates --config and --difficulty and hands them to the game package.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if _, err := config.Resolve(flagConfig, preset); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	goalkeeper.SetConfigPath(flagConfig)
	goalkeeper.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig builds the runtime config for a session of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modeArg returns the requested game mode, defaulting to the standard rules.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultMode
}
