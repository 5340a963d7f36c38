// Package main provides the quote-insights CLI: price model training and
// prediction, customer segmentation, and quote narrative generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quote_insights",
	Short: "Quotation estimation toolkit",
	Long:  "quote_insights derives price predictions, customer segments, and narrative summaries from historical quotation data.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
