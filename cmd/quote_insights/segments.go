package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/observability"
	"github.com/jonathan/quote-insights/internal/segmentation"
)

var segmentsK int

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Compute customer segments from quotation history",
	Long:  "Segments clusters every customer by quote count, value, and recency, and prints the labeled segmentation report.",
	RunE:  runSegments,
}

func init() {
	segmentsCmd.Flags().IntVar(&segmentsK, "k", segmentation.DefaultK, "Number of clusters")
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	repo, closeRepo, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer closeRepo()

	rows, err := segmentation.NewSegmenter(repo).Compute(cmd.Context(), segmentsK)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSegments(rows)
	return nil
}
