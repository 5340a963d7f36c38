package pricing

import "fmt"

// TrainingDataUnavailableError indicates that no historical line rows exist
// to train from. It is fatal to the calling request and is not retried
// automatically.
type TrainingDataUnavailableError struct {
	Message string
}

func (e *TrainingDataUnavailableError) Error() string {
	return fmt.Sprintf("training data unavailable: %s", e.Message)
}

// PredictionInputError indicates a malformed item payload. It surfaces to the
// caller as a request-level failure, never as a process fault.
type PredictionInputError struct {
	Message string
	Cause   error
}

func (e *PredictionInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("prediction input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("prediction input error: %s", e.Message)
}

func (e *PredictionInputError) Unwrap() error {
	return e.Cause
}

// ArtifactError indicates a failure persisting, loading, or validating the
// price model artifact.
type ArtifactError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifact error at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("artifact error at %s: %s", e.Path, e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
