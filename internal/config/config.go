// Package config provides environment-driven configuration for the
// quote-insights estimators. Every knob has a documented default so a fresh
// checkout works without any environment at all.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/quote-insights/internal/llm"
)

// Defaults for the summarization decode knobs.
const (
	DefaultSummaryModel  = "t5-small"
	DefaultMaxLen        = 140
	DefaultMinLen        = 60
	DefaultNumBeams      = 4
	DefaultNoRepeatNGram = 3
	DefaultTopP          = 0.9
	DefaultTemperature   = 0.8

	// DefaultSQLitePath matches the quotation web application's local
	// database location.
	DefaultSQLitePath = "instance/database.db"
)

// Config is the resolved configuration surface of the core. The model-family
// check (does this model need a "summarize: " task prefix) is resolved here,
// once, rather than re-derived from the name string on every call.
type Config struct {
	// Summarization.
	SummaryModel    string
	SummaryProvider llm.Provider
	TaskPrefix      bool
	HFToken         string
	GeminiAPIKey    string
	MaxLen          int
	MinLen          int
	NumBeams        int
	NoRepeatNGram   int
	Sampling        bool
	TopP            float64
	Temperature     float64

	// Pricing.
	PriceModelPath string

	// Repository. DatabaseURL selects PostgreSQL when set; otherwise the
	// local SQLite database at SQLitePath is used.
	DatabaseURL string
	SQLitePath  string
}

// FromEnv builds a Config from the environment, applying defaults.
func FromEnv() *Config {
	model := envString("SUMMARY_MODEL", DefaultSummaryModel)
	cfg := &Config{
		SummaryModel:    model,
		SummaryProvider: llm.ResolveProvider(model),
		TaskPrefix:      isT5Family(model),
		HFToken:         firstEnv("HF_TOKEN", "HUGGINGFACE_HUB_TOKEN", "HUGGINGFACEHUB_API_TOKEN"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		MaxLen:          envInt("SUMMARY_MAX_LEN", DefaultMaxLen),
		MinLen:          envInt("SUMMARY_MIN_LEN", DefaultMinLen),
		NumBeams:        envInt("SUMMARY_NUM_BEAMS", DefaultNumBeams),
		NoRepeatNGram:   envInt("SUMMARY_NO_REPEAT_NGRAM", DefaultNoRepeatNGram),
		Sampling:        envBool("SUMMARY_SAMPLING", false),
		TopP:            envFloat("SUMMARY_TOP_P", DefaultTopP),
		Temperature:     envFloat("SUMMARY_TEMPERATURE", DefaultTemperature),
		PriceModelPath:  os.Getenv("PRICE_MODEL_PATH"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      envString("QUOTE_DB_PATH", DefaultSQLitePath),
	}
	return cfg
}

// SummarizerCredentials returns the acquisition stages to try, in order:
// anonymous (cache-friendly) access first, then the environment credential if
// one is present. Gemini models only have a credentialed stage.
func (c *Config) SummarizerCredentials() []llm.Credentials {
	if c.SummaryProvider == llm.ProviderGemini {
		if c.GeminiAPIKey == "" {
			return nil
		}
		return []llm.Credentials{{Stage: "api-key", Token: c.GeminiAPIKey}}
	}
	stages := []llm.Credentials{{Stage: "anonymous"}}
	if c.HFToken != "" {
		stages = append(stages, llm.Credentials{Stage: "token", Token: c.HFToken})
	}
	return stages
}

// isT5Family reports whether the model identifier belongs to the t5 family,
// which requires an explicit "summarize: " task prefix.
func isT5Family(model string) bool {
	return strings.Contains(strings.ToLower(model), "t5")
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
