package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// defaultHFEndpoint is the public hosted inference API.
const defaultHFEndpoint = "https://api-inference.huggingface.co"

// HuggingFaceSummarizer talks to the hosted inference API for summarization
// checkpoints (t5-small, bart-large-cnn, ...).
type HuggingFaceSummarizer struct {
	model    string
	endpoint string
	token    string
	client   *http.Client
}

// NewHuggingFaceSummarizer acquires access to the configured model for one
// credentials stage. Access is verified with a lightweight model probe so an
// unreachable or gated model fails acquisition here rather than on first use.
func NewHuggingFaceSummarizer(ctx context.Context, cfg Config, creds Credentials) (*HuggingFaceSummarizer, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultHFEndpoint
	}
	s := &HuggingFaceSummarizer{
		model:    cfg.Model,
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    creds.Token,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	if err := s.probe(ctx); err != nil {
		return nil, &AcquisitionError{Stage: creds.Stage, Model: cfg.Model, Cause: err}
	}
	return s, nil
}

// probe checks that the model endpoint answers for these credentials.
func (s *HuggingFaceSummarizer) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.modelURL(), nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach inference API: %w", err)
	}
	defer resp.Body.Close()

	// 503 means the model is loading, which still proves access.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return fmt.Errorf("inference API returned status %d", resp.StatusCode)
	}
	return nil
}

type hfParameters struct {
	MaxLength          int      `json:"max_length"`
	MinLength          int      `json:"min_length"`
	NoRepeatNGramSize  int      `json:"no_repeat_ngram_size"`
	Truncation         string   `json:"truncation"`
	DoSample           bool     `json:"do_sample"`
	TopP               *float64 `json:"top_p,omitempty"`
	Temperature        *float64 `json:"temperature,omitempty"`
	NumReturnSequences *int     `json:"num_return_sequences,omitempty"`
	NumBeams           *int     `json:"num_beams,omitempty"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    struct {
		WaitForModel bool `json:"wait_for_model"`
		UseCache     bool `json:"use_cache"`
	} `json:"options"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// Summarize runs one summarization call with the request's decoding
// constraints. The source is truncated server-side to the model's input limit.
func (s *HuggingFaceSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	body := hfRequest{Inputs: req.Text}
	body.Parameters = hfParameters{
		MaxLength:         req.MaxLength,
		MinLength:         req.MinLength,
		NoRepeatNGramSize: req.NoRepeatNGram,
		Truncation:        "longest_first",
		DoSample:          req.Sampling,
	}
	if req.Sampling {
		one := 1
		body.Parameters.TopP = &req.TopP
		body.Parameters.Temperature = &req.Temperature
		body.Parameters.NumReturnSequences = &one
	} else {
		body.Parameters.NumBeams = &req.NumBeams
	}
	body.Options.WaitForModel = true
	body.Options.UseCache = true

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "failed to encode request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL(), bytes.NewReader(payload))
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "failed to build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	s.authorize(httpReq)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Model: s.model, Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return "", &GenerationError{Model: s.model, Message: fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Error)}
		}
		return "", &GenerationError{Model: s.model, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var summaries []hfSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return "", &GenerationError{Model: s.model, Message: "failed to decode response", Cause: err}
	}
	if len(summaries) == 0 || summaries[0].SummaryText == "" {
		return "", &GenerationError{Model: s.model, Message: "empty summary in response"}
	}
	return strings.TrimSpace(summaries[0].SummaryText), nil
}

// Model returns the model identifier.
func (s *HuggingFaceSummarizer) Model() string {
	return s.model
}

// Close is a no-op for the HTTP-backed summarizer.
func (s *HuggingFaceSummarizer) Close() error {
	return nil
}

func (s *HuggingFaceSummarizer) modelURL() string {
	return s.endpoint + "/models/" + s.model
}

func (s *HuggingFaceSummarizer) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}
