package pricing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/quote-insights/internal/features"
)

func testArtifact() *Artifact {
	categories := []string{"Bay Window", "Casement Window"}
	return &Artifact{
		SchemaVersion: ArtifactSchemaVersion,
		ModelID:       uuid.New(),
		TrainedAt:     time.Now().UTC(),
		RowCount:      10,
		Categories:    categories,
		FeatureOrder:  []string{"category:Bay Window", "category:Casement Window", "area", "quantity", "base_cost_per_sqft"},
		Coefficients:  []float64{5, -3, 2, 10, 0.5},
		Intercept:     1.5,
		encoder:       encoderFromCategories(categories),
	}
}

func TestArtifact_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "model.json")
	original := testArtifact()
	require.NoError(t, original.Save(path))

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)

	assert.Equal(t, original.ModelID, loaded.ModelID)
	assert.Equal(t, original.Categories, loaded.Categories)
	assert.Equal(t, original.Coefficients, loaded.Coefficients)
	assert.Equal(t, original.Intercept, loaded.Intercept)

	f := features.LineFeature{Category: "Casement Window", Area: 8, Quantity: 2, BaseCostPerSqft: 30}
	assert.InDelta(t, original.Predict(f), loaded.Predict(f), 1e-12)
}

func TestArtifact_PredictUnknownCategory(t *testing.T) {
	a := testArtifact()

	known := a.Predict(features.LineFeature{Category: "Bay Window", Area: 4, Quantity: 1, BaseCostPerSqft: 20})
	unknown := a.Predict(features.LineFeature{Category: "Skylight", Area: 4, Quantity: 1, BaseCostPerSqft: 20})

	// The unknown category contributes nothing; only the one-hot term differs.
	assert.InDelta(t, known-5, unknown, 1e-12)
}

func TestLoadArtifact_MissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "missing.json"))

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestLoadArtifact_RejectsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": 1}`), 0o644))

	_, err := LoadArtifact(path)
	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadArtifact_RejectsWrongSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	a := testArtifact()
	a.SchemaVersion = 99
	require.NoError(t, a.Save(path))

	_, err := LoadArtifact(path)
	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "unsupported schema version")
}

func TestLoadArtifact_RejectsCoefficientMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	a := testArtifact()
	a.Coefficients = a.Coefficients[:3]
	require.NoError(t, a.Save(path))

	_, err := LoadArtifact(path)
	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
	assert.Contains(t, err.Error(), "coefficient count")
}
