package pricing

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/quote-insights/internal/features"
	"github.com/jonathan/quote-insights/internal/repository"
	"github.com/jonathan/quote-insights/internal/types"
)

// DefaultArtifactPath is where the trained model lands when no explicit path
// is configured.
const DefaultArtifactPath = "instance/price_model.json"

// Config controls where the estimator looks for, and persists, its artifact.
type Config struct {
	// ArtifactPath is the explicitly configured artifact location. Empty means
	// not configured.
	ArtifactPath string
	// DefaultPath is the fallback local location. Empty means
	// DefaultArtifactPath.
	DefaultPath string
}

// Estimator owns the price model artifact. The in-memory cache is process-wide
// state populated lazily on first use; a mutex guards the load-or-train
// sequence so concurrent first callers trigger at most one training run.
type Estimator struct {
	repo repository.Repository
	cfg  Config

	mu       sync.Mutex
	artifact *Artifact
}

// NewEstimator creates an estimator reading history from repo.
func NewEstimator(repo repository.Repository, cfg Config) *Estimator {
	if cfg.DefaultPath == "" {
		cfg.DefaultPath = DefaultArtifactPath
	}
	return &Estimator{repo: repo, cfg: cfg}
}

// Train fits a fresh artifact from the repository, persists it (overwriting
// any existing artifact), replaces the cached model, and returns it.
func (e *Estimator) Train(ctx context.Context) (*Artifact, error) {
	artifact, err := e.train(ctx)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.artifact = artifact
	e.mu.Unlock()
	return artifact, nil
}

func (e *Estimator) train(ctx context.Context) (*Artifact, error) {
	rows, err := e.repo.TrainingRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read training rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, &TrainingDataUnavailableError{Message: "no historical quotation lines; seed the database first"}
	}

	categories := make([]string, len(rows))
	for i, r := range rows {
		categories[i] = r.Category
	}
	encoder := NewCategoryEncoder(categories)

	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		f := features.FromTrainingRow(r)
		vec := encoder.Encode(f.Category)
		vec = append(vec, f.Area, float64(f.Quantity), f.BaseCostPerSqft)
		X[i] = vec
		y[i] = r.LineTotal
	}

	weights, intercept, err := fitLinear(X, y)
	if err != nil {
		return nil, fmt.Errorf("failed to fit price regression over %d rows: %w", len(rows), err)
	}

	featureOrder := make([]string, 0, encoder.Width()+len(numericFeatureOrder))
	for _, c := range encoder.Categories() {
		featureOrder = append(featureOrder, "category:"+c)
	}
	featureOrder = append(featureOrder, numericFeatureOrder...)

	artifact := &Artifact{
		SchemaVersion: ArtifactSchemaVersion,
		ModelID:       uuid.New(),
		TrainedAt:     time.Now().UTC(),
		RowCount:      len(rows),
		Categories:    encoder.Categories(),
		FeatureOrder:  featureOrder,
		Coefficients:  weights,
		Intercept:     intercept,
		encoder:       encoder,
	}

	mae := 0.0
	for i, r := range rows {
		mae += math.Abs(artifact.Predict(features.FromTrainingRow(r)) - y[i])
	}
	mae /= float64(len(rows))
	log.Printf("[pricing] trained linear model on %d rows, MAE=%.2f", len(rows), mae)

	if err := artifact.Save(e.savePath()); err != nil {
		return nil, err
	}
	return artifact, nil
}

// Predict returns the suggested non-negative total for a draft quote, rounded
// to two decimals. An empty item list returns 0.0 without touching the model.
func (e *Estimator) Predict(ctx context.Context, items []types.LineItem) (float64, error) {
	if len(items) == 0 {
		return 0.0, nil
	}
	req := types.PredictRequest{Items: items}
	if err := req.Validate(); err != nil {
		return 0, &PredictionInputError{Message: "invalid item payload", Cause: err}
	}

	artifact, err := e.acquire(ctx)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, item := range items {
		pred := artifact.Predict(features.FromLineItem(item))
		if pred > 0 {
			total += pred
		}
	}
	return math.Round(total*100) / 100, nil
}

// acquire returns the cached artifact, loading or training it on first use.
// Acquisition order: explicit configured path, then the default local path,
// then a fresh training run. Failures propagate to the caller and leave the
// cache empty so a later call can retry once the underlying cause is fixed.
func (e *Estimator) acquire(ctx context.Context) (*Artifact, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.artifact != nil {
		return e.artifact, nil
	}

	if e.cfg.ArtifactPath != "" && fileExists(e.cfg.ArtifactPath) {
		artifact, err := LoadArtifact(e.cfg.ArtifactPath)
		if err != nil {
			return nil, err
		}
		e.artifact = artifact
		return artifact, nil
	}

	if fileExists(e.cfg.DefaultPath) {
		artifact, err := LoadArtifact(e.cfg.DefaultPath)
		if err != nil {
			return nil, err
		}
		e.artifact = artifact
		return artifact, nil
	}

	log.Printf("[pricing] artifact not found, training from repository")
	artifact, err := e.train(ctx)
	if err != nil {
		return nil, err
	}
	e.artifact = artifact
	return artifact, nil
}

func (e *Estimator) savePath() string {
	if e.cfg.ArtifactPath != "" {
		return e.cfg.ArtifactPath
	}
	return e.cfg.DefaultPath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
