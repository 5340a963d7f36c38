package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/narrative"
	"github.com/jonathan/quote-insights/internal/types"
)

var (
	summarizeCustomer  string
	summarizeItemsPath string
	summarizeTotal     float64
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate a narrative summary for a quote",
	Long:  "Summarize builds a narrative description of a quote, compressing it through the configured summarization model when available and falling back to a deterministic template otherwise.",
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeCustomer, "customer", "", "Customer name")
	summarizeCmd.Flags().StringVar(&summarizeItemsPath, "items", "-", "Path to a JSON array of line items, or - for stdin")
	summarizeCmd.Flags().Float64Var(&summarizeTotal, "total", 0, "Quote total amount")
	_ = summarizeCmd.MarkFlagRequired("customer")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	items, err := readItems(summarizeItemsPath)
	if err != nil {
		return err
	}

	summary := narrative.FromConfig(cfg).Generate(cmd.Context(), types.QuoteNarrative{
		CustomerName: summarizeCustomer,
		Items:        items,
		TotalAmount:  summarizeTotal,
	})
	fmt.Println(summary)
	return nil
}
