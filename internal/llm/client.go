package llm

import (
	"context"
	"strings"
)

// Provider identifies a summarization backend.
type Provider string

// Supported providers.
const (
	// ProviderHuggingFace serves t5/bart style summarization checkpoints via
	// the hosted inference API.
	ProviderHuggingFace Provider = "huggingface"
	// ProviderGemini serves gemini-* models through the Google SDK.
	ProviderGemini Provider = "gemini"
)

// ResolveProvider maps a model identifier to its provider. Resolved once at
// configuration time, never re-derived per call.
func ResolveProvider(model string) Provider {
	if strings.HasPrefix(strings.ToLower(model), "gemini") {
		return ProviderGemini
	}
	return ProviderHuggingFace
}

// Request carries one summarization invocation: the source text plus the
// decoding constraints derived for it.
type Request struct {
	Text          string
	MinLength     int
	MaxLength     int
	NoRepeatNGram int
	Sampling      bool
	TopP          float64
	Temperature   float64
	NumBeams      int
}

// Summarizer is a summarization capability acquired once per process.
type Summarizer interface {
	// Summarize compresses the request text. Failures are returned, never
	// swallowed; the caller owns the fallback.
	Summarize(ctx context.Context, req Request) (string, error)
	// Model returns the model identifier this summarizer serves.
	Model() string
	// Close releases any resources held by the summarizer.
	Close() error
}

// Credentials is one acquisition stage: a named way to reach the model. The
// narrative generator tries stages in order and commits to the first success.
type Credentials struct {
	// Stage names the attempt for logging ("anonymous", "token", "api-key").
	Stage string
	// Token is empty for anonymous access.
	Token string
}

// Config selects and parameterizes a summarization backend.
type Config struct {
	Model    string
	Provider Provider
	// Endpoint overrides the Hugging Face API base URL. Empty means the
	// public hosted API.
	Endpoint string
}

// NewSummarizer acquires a summarizer for one credentials stage.
func NewSummarizer(ctx context.Context, cfg Config, creds Credentials) (Summarizer, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiSummarizer(ctx, cfg, creds)
	default:
		return NewHuggingFaceSummarizer(ctx, cfg, creds)
	}
}
