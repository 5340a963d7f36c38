package pricing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/quote-insights/internal/features"
)

// ArtifactSchemaVersion is the current artifact format version. Bump when the
// serialized layout changes incompatibly.
const ArtifactSchemaVersion = 1

//go:embed price_model.schema.json
var artifactSchema string

// Artifact is the persisted price model: the fitted category vocabulary plus
// the linear coefficients over {one-hot category, area, quantity,
// base_cost_per_sqft}. The on-disk format is versioned JSON validated against
// an embedded JSON Schema, so the artifact stays portable and testable
// independently of any object-graph serialization.
type Artifact struct {
	SchemaVersion int       `json:"schema_version"`
	ModelID       uuid.UUID `json:"model_id"`
	TrainedAt     time.Time `json:"trained_at"`
	RowCount      int       `json:"row_count"`
	Categories    []string  `json:"categories"`
	FeatureOrder  []string  `json:"feature_order"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`

	encoder *CategoryEncoder
}

// numericFeatureOrder is the fixed tail of the feature vector after the
// one-hot category segment.
var numericFeatureOrder = []string{"area", "quantity", "base_cost_per_sqft"}

// Predict returns the raw line total prediction for a single line feature.
func (a *Artifact) Predict(f features.LineFeature) float64 {
	vec := a.encoder.Encode(f.Category)
	vec = append(vec, f.Area, float64(f.Quantity), f.BaseCostPerSqft)

	total := a.Intercept
	for i, w := range a.Coefficients {
		total += w * vec[i]
	}
	return total
}

// Save writes the artifact to path as JSON, creating parent directories as
// needed. Overwrites any existing artifact at that path.
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &ArtifactError{Path: path, Message: "failed to create parent directory", Cause: err}
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return &ArtifactError{Path: path, Message: "failed to marshal artifact", Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ArtifactError{Path: path, Message: "failed to write artifact", Cause: err}
	}
	return nil
}

// LoadArtifact reads an artifact from path, validating it against the
// embedded schema before decoding.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArtifactError{Path: path, Message: "failed to read artifact", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(artifactSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ArtifactError{Path: path, Message: "failed to run schema validation", Cause: err}
	}
	if !result.Valid() {
		msg := "schema validation failed"
		if len(result.Errors()) > 0 {
			msg = fmt.Sprintf("schema validation failed: %s", result.Errors()[0].String())
		}
		return nil, &ArtifactError{Path: path, Message: msg}
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &ArtifactError{Path: path, Message: "failed to decode artifact", Cause: err}
	}
	if a.SchemaVersion != ArtifactSchemaVersion {
		return nil, &ArtifactError{Path: path, Message: fmt.Sprintf("unsupported schema version %d, want %d", a.SchemaVersion, ArtifactSchemaVersion)}
	}
	if len(a.Coefficients) != len(a.Categories)+len(numericFeatureOrder) {
		return nil, &ArtifactError{Path: path, Message: fmt.Sprintf("coefficient count %d does not match %d categories plus %d numeric features", len(a.Coefficients), len(a.Categories), len(numericFeatureOrder))}
	}

	a.encoder = encoderFromCategories(a.Categories)
	return &a, nil
}
