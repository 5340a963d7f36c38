package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/repository/sqlite"
)

var seedValue int64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the local database with synthetic quotation history",
	Long:  "Seed repopulates the local SQLite database with a deterministic synthetic dataset of customers, products, and quotations, then trains the price model from it.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "Random seed for the synthetic dataset")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if cfg.DatabaseURL != "" {
		return fmt.Errorf("seed only supports the local SQLite database; unset DATABASE_URL")
	}

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Seed(seedValue); err != nil {
		return err
	}
	fmt.Printf("Seeded %s with synthetic quotation history.\n", cfg.SQLitePath)

	if _, err := newEstimator(store, cfg, "").Train(cmd.Context()); err != nil {
		return fmt.Errorf("failed to train price model from seeded data: %w", err)
	}
	fmt.Println("Trained price model from seeded data.")
	return nil
}
