package main

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/brief"
)

// Config is read from the environment once at startup.
type Config struct {
	Addr      string `env:"BRIEF_ADDR"       envDefault:":3000"`
	LogLevel  string `env:"BRIEF_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"BRIEF_LOG_FORMAT" envDefault:"json"`

	Fetcher        string        `env:"BRIEF_FETCHER"          envDefault:"http"`
	Extractor      string        `env:"BRIEF_EXTRACTOR"        envDefault:"goquery"`
	FetchTimeout   time.Duration `env:"BRIEF_FETCH_TIMEOUT"    envDefault:"10s"`
	MaxUploadBytes int64         `env:"BRIEF_MAX_UPLOAD_BYTES" envDefault:"10485760"`

	ProviderTimeout time.Duration `env:"BRIEF_PROVIDER_TIMEOUT" envDefault:"30s"`
	ChunkInterval   time.Duration `env:"BRIEF_CHUNK_INTERVAL"   envDefault:"0s"`

	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string `env:"OPENAI_BASE_URL"`
	AnthropicAPIKey    string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL   string `env:"ANTHROPIC_BASE_URL"`
	HuggingFaceAPIKey  string `env:"HUGGINGFACE_API_KEY"`
	HuggingFaceBaseURL string `env:"HUGGINGFACE_BASE_URL"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	GeminiBaseURL      string `env:"GEMINI_BASE_URL"`
}

var (
	fetchers   = []string{"http", "rod"}
	extractors = []string{"goquery", "readability", "trafilatura"}
	logFormats = []string{"json", "text"}
)

// LoadConfig parses the configuration from environ, or from the process
// environment when environ is nil.
func LoadConfig(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, brief.Errorf(brief.EINVALID, "invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !slices.Contains(fetchers, c.Fetcher) {
		return brief.Errorf(brief.EINVALID, "BRIEF_FETCHER must be one of %s", strings.Join(fetchers, ", "))
	}
	if !slices.Contains(extractors, c.Extractor) {
		return brief.Errorf(brief.EINVALID, "BRIEF_EXTRACTOR must be one of %s", strings.Join(extractors, ", "))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return brief.Errorf(brief.EINVALID, "BRIEF_LOG_FORMAT must be one of %s", strings.Join(logFormats, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxUploadBytes <= 0 {
		return brief.Errorf(brief.EINVALID, "BRIEF_MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, brief.Errorf(brief.EINVALID, "BRIEF_LOG_LEVEL: %v", err)
	}
	return level, nil
}

// NewLogger returns a logger writing to w in the configured format.
func (c *Config) NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
