package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/narrative"
	"github.com/jonathan/quote-insights/internal/observability"
	"github.com/jonathan/quote-insights/internal/segmentation"
	"github.com/jonathan/quote-insights/internal/types"
)

var (
	reportCustomer  string
	reportItemsPath string
	reportK         int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Predict, summarize, and segment in one run",
	Long:  "Report predicts the total for a draft quote, generates its narrative summary from the predicted total, and prints the customer segmentation report.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCustomer, "customer", "", "Customer name")
	reportCmd.Flags().StringVar(&reportItemsPath, "items", "-", "Path to a JSON array of line items, or - for stdin")
	reportCmd.Flags().IntVar(&reportK, "k", segmentation.DefaultK, "Number of clusters")
	_ = reportCmd.MarkFlagRequired("customer")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	items, err := readItems(reportItemsPath)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer closeRepo()

	var (
		total    float64
		segments []segmentation.Assignment
	)
	g, gCtx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		total, err = newEstimator(repo, cfg, "").Predict(gCtx, items)
		if err != nil {
			return fmt.Errorf("prediction failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		segments, err = segmentation.NewSegmenter(repo).Compute(gCtx, reportK)
		if err != nil {
			return fmt.Errorf("segmentation failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	summary := narrative.FromConfig(cfg).Generate(cmd.Context(), types.QuoteNarrative{
		CustomerName: reportCustomer,
		Items:        items,
		TotalAmount:  total,
	})

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPrediction(len(items), total)
	fmt.Println()
	fmt.Println(summary)
	fmt.Println()
	printer.PrintSegments(segments)
	return nil
}
