// Package llm provides summarization clients for the narrative generator.
// Two providers are supported: the Hugging Face inference API for t5/bart
// style checkpoints and Google Gemini for gemini-* model identifiers.
package llm

import "fmt"

// AcquisitionError indicates that a summarization capability could not be
// acquired. It is internal to the narrative generator, which responds by
// falling back to the deterministic template; it is never surfaced to the
// end caller.
type AcquisitionError struct {
	Stage string
	Model string
	Cause error
}

func (e *AcquisitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model acquisition failed (%s, model %s): %v", e.Stage, e.Model, e.Cause)
	}
	return fmt.Sprintf("model acquisition failed (%s, model %s)", e.Stage, e.Model)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates a failed summarization call against an already
// acquired model.
type GenerationError struct {
	Model   string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed (model %s): %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed (model %s): %s", e.Model, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
