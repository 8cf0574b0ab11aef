package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hamster-dodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a round would use, after the config search
path and the difficulty preset are applied. The output is valid YAML and can
be saved to ~/.hamster/hamster.yaml as a starting point.

Examples:
  hamster config
  hamster config --difficulty hard > ~/.hamster/hamster.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
