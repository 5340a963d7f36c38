package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/pricing"
	"github.com/jonathan/quote-insights/internal/repository"
	"github.com/jonathan/quote-insights/internal/repository/postgres"
	"github.com/jonathan/quote-insights/internal/repository/sqlite"
	"github.com/jonathan/quote-insights/internal/types"
)

// openRepository picks the backend from configuration: PostgreSQL when
// DATABASE_URL is set, the local SQLite database otherwise. The returned
// closer must be called when done.
func openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	if cfg.DatabaseURL != "" {
		store, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// newEstimator wires a price estimator from configuration, with an optional
// per-command artifact path override.
func newEstimator(repo repository.Repository, cfg *config.Config, pathOverride string) *pricing.Estimator {
	artifactPath := cfg.PriceModelPath
	if pathOverride != "" {
		artifactPath = pathOverride
	}
	return pricing.NewEstimator(repo, pricing.Config{ArtifactPath: artifactPath})
}

// readItems loads a JSON array of line items from path, or from stdin when
// path is "-". Malformed payloads surface as PredictionInputError.
func readItems(path string) ([]types.LineItem, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read items from %s: %w", path, err)
	}

	var items []types.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &pricing.PredictionInputError{Message: "malformed item payload", Cause: err}
	}
	return items, nil
}
