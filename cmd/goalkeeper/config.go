package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goalkeeper/internal/config"
	"github.com/vovakirdan/goalkeeper/internal/games/goalkeeper"
	"github.com/vovakirdan/goalkeeper/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a new round would use, as YAML.

The search order is --config, ~/.arcade/configs/goalkeeper.yaml,
./configs/goalkeeper.yaml and finally the built-in defaults. The
--difficulty preset is applied on top.

Examples:
  goalkeeper config > ~/.arcade/configs/goalkeeper.yaml
  goalkeeper config goalkeeper_classic --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	created, err := registry.Create(modeArg(args))
	if err != nil {
		return err
	}
	game, ok := created.(*goalkeeper.Game)
	if !ok {
		return fmt.Errorf("mode %q has no goalkeeper configuration", modeArg(args))
	}

	game.Reset(runtimeConfig(0, 0))
	data, err := config.Marshal(game.Config())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// port extracts the port from a listen address for the connect hint.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil && p != "" {
		return p
	}
	return addr
}
