package narrative

import (
	"context"
	"log"
	"sync"

	"github.com/jonathan/quote-insights/internal/config"
	"github.com/jonathan/quote-insights/internal/llm"
	"github.com/jonathan/quote-insights/internal/types"
)

// acquisitionState tracks the summarizer cache: not yet attempted, acquired,
// or permanently failed for the rest of the process.
type acquisitionState int

const (
	acquisitionPending acquisitionState = iota
	acquisitionReady
	acquisitionFailed
)

// Options parameterize the generator. Credentials are the ordered acquisition
// stages to try; TaskPrefix is the capability flag resolved at configuration
// time for models that need a "summarize: " prompt prefix.
type Options struct {
	Model         string
	Provider      llm.Provider
	Endpoint      string
	TaskPrefix    bool
	Credentials   []llm.Credentials
	MaxLen        int
	MinLen        int
	NumBeams      int
	NoRepeatNGram int
	Sampling      bool
	TopP          float64
	Temperature   float64
}

// Generator produces quote narratives. Generate never fails: any error in the
// learned path, including unavailable acquisition, collapses to the
// deterministic template.
type Generator struct {
	opts Options

	// acquire is swapped in tests to avoid network access.
	acquire func(ctx context.Context, cfg llm.Config, creds llm.Credentials) (llm.Summarizer, error)

	mu         sync.Mutex
	state      acquisitionState
	summarizer llm.Summarizer
	lastErr    error
}

// NewGenerator creates a generator with explicit options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts, acquire: llm.NewSummarizer}
}

// FromConfig creates a generator wired from the environment configuration.
func FromConfig(cfg *config.Config) *Generator {
	return NewGenerator(Options{
		Model:         cfg.SummaryModel,
		Provider:      cfg.SummaryProvider,
		TaskPrefix:    cfg.TaskPrefix,
		Credentials:   cfg.SummarizerCredentials(),
		MaxLen:        cfg.MaxLen,
		MinLen:        cfg.MinLen,
		NumBeams:      cfg.NumBeams,
		NoRepeatNGram: cfg.NoRepeatNGram,
		Sampling:      cfg.Sampling,
		TopP:          cfg.TopP,
		Temperature:   cfg.Temperature,
	})
}

// Generate returns a narrative summary for the quote. It always returns a
// non-empty string and never propagates a failure to the caller.
func (g *Generator) Generate(ctx context.Context, input types.QuoteNarrative) string {
	source := BuildSourceText(input)
	summary, err := g.summarize(ctx, source)
	if err != nil {
		log.Printf("[narrative] falling back to template, model %s: %v", g.opts.Model, err)
		return FallbackSummary(input)
	}
	log.Printf("[narrative] used model %s, sampling=%v", g.opts.Model, g.opts.Sampling)
	return summary
}

// summarize runs the learned compression path.
func (g *Generator) summarize(ctx context.Context, text string) (string, error) {
	summarizer, err := g.acquireSummarizer(ctx)
	if err != nil {
		return "", err
	}

	if g.opts.TaskPrefix {
		text = "summarize: " + text
	}
	minLen, maxLen := dynamicLengths(text, g.opts.MinLen, g.opts.MaxLen)

	return summarizer.Summarize(ctx, llm.Request{
		Text:          text,
		MinLength:     minLen,
		MaxLength:     maxLen,
		NoRepeatNGram: g.opts.NoRepeatNGram,
		Sampling:      g.opts.Sampling,
		TopP:          g.opts.TopP,
		Temperature:   g.opts.Temperature,
		NumBeams:      g.opts.NumBeams,
	})
}

// acquireSummarizer returns the cached summarizer, attempting the acquisition
// stages in order exactly once per process. A failed acquisition is sticky:
// later calls go straight to the fallback without retrying the network.
func (g *Generator) acquireSummarizer(ctx context.Context) (llm.Summarizer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case acquisitionReady:
		return g.summarizer, nil
	case acquisitionFailed:
		return nil, g.lastErr
	}

	cfg := llm.Config{Model: g.opts.Model, Provider: g.opts.Provider, Endpoint: g.opts.Endpoint}
	var lastErr error = &llm.AcquisitionError{Stage: "none", Model: g.opts.Model}
	for _, creds := range g.opts.Credentials {
		summarizer, err := g.acquire(ctx, cfg, creds)
		if err == nil {
			log.Printf("[narrative] acquired summarizer, model %s, stage %s", g.opts.Model, creds.Stage)
			g.state = acquisitionReady
			g.summarizer = summarizer
			return summarizer, nil
		}
		log.Printf("[narrative] acquisition stage %s failed, model %s: %v", creds.Stage, g.opts.Model, err)
		lastErr = err
	}

	g.state = acquisitionFailed
	g.lastErr = lastErr
	return nil, lastErr
}
