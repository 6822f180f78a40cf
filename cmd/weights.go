package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/postlint/internal/config"
	"github.com/dotcommander/postlint/internal/weights"
)

var checkWeightsFile string

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show or validate the effective weight table",
	Long: `Weights prints the effective weight table after applying any override
file, or validates an override file against the weights schema with
--check.`,
	RunE: runWeights,
}

func init() {
	weightsCmd.Flags().StringVar(&checkWeightsFile, "check", "", "Validate an override file without printing the table")
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, args []string) error {
	if checkWeightsFile != "" {
		if _, err := weights.Load(checkWeightsFile); err != nil {
			return err
		}
		fmt.Printf("%s is valid\n", checkWeightsFile)
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	table, err := weights.Load(cfg.Weights)
	if err != nil {
		return err
	}

	raw, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("cannot encode weight table: %w", err)
	}
	fmt.Print(string(raw))
	return nil
}
