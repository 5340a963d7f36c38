package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSummarizer serves gemini-* model identifiers through the Google SDK.
// Gemini has no anonymous access, so acquisition only succeeds on a stage
// carrying an API key.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer acquires a Gemini-backed summarizer.
func NewGeminiSummarizer(ctx context.Context, cfg Config, creds Credentials) (*GeminiSummarizer, error) {
	if creds.Token == "" {
		return nil, &AcquisitionError{Stage: creds.Stage, Model: cfg.Model, Cause: fmt.Errorf("API key is required")}
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(creds.Token))
	if err != nil {
		return nil, &AcquisitionError{Stage: creds.Stage, Model: cfg.Model, Cause: err}
	}
	return &GeminiSummarizer{client: client, model: cfg.Model}, nil
}

// Summarize compresses the request text. Beam search does not exist in this
// API; the non-sampling path runs greedy decoding with a low temperature
// instead, which keeps the output deterministic in the same spirit.
func (s *GeminiSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetCandidateCount(1)
	model.SetMaxOutputTokens(int32(req.MaxLength))
	if req.Sampling {
		model.SetTemperature(float32(req.Temperature))
		model.SetTopP(float32(req.TopP))
	} else {
		model.SetTemperature(0.1)
	}

	prompt := fmt.Sprintf(
		"Summarize the following quotation description in one concise paragraph of %d to %d words. Do not repeat phrases.\n\n%s",
		req.MinLength, req.MaxLength, req.Text,
	)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "failed to generate content", Cause: err}
	}
	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "unusable response", Cause: err}
	}
	return strings.TrimSpace(text), nil
}

// Model returns the model identifier.
func (s *GeminiSummarizer) Model() string {
	return s.model
}

// Close releases resources held by the client.
func (s *GeminiSummarizer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
