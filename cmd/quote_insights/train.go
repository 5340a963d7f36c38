package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/observability"
)

var trainOut string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the price model from historical quotation lines",
	Long:  "Train fits the linear price model over every historical quotation line joined with its product, persists the artifact, and prints a short description.",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainOut, "out", "", "Artifact output path (defaults to PRICE_MODEL_PATH, then the local default)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	repo, closeRepo, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer closeRepo()

	estimator := newEstimator(repo, cfg, trainOut)
	artifact, err := estimator.Train(cmd.Context())
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintArtifact(artifact)
	return nil
}
