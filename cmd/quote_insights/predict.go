package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/observability"
)

var predictItemsPath string

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a draft quote total",
	Long:  "Predict reads a JSON array of draft line items and prints the suggested non-negative total for the quote.",
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictItemsPath, "items", "-", "Path to a JSON array of line items, or - for stdin")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	items, err := readItems(predictItemsPath)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer closeRepo()

	total, err := newEstimator(repo, cfg, "").Predict(cmd.Context(), items)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintPrediction(len(items), total)
	return nil
}
