package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/anthropic"
	"github.com/fwojciec/brief/extract"
	"github.com/fwojciec/brief/gemini"
	"github.com/fwojciec/brief/goquery"
	briefhttp "github.com/fwojciec/brief/http"
	"github.com/fwojciec/brief/huggingface"
	"github.com/fwojciec/brief/openai"
	"github.com/fwojciec/brief/pdf"
	"github.com/fwojciec/brief/readability"
	"github.com/fwojciec/brief/rod"
	briefslog "github.com/fwojciec/brief/slog"
	"github.com/fwojciec/brief/summarize"
	"github.com/fwojciec/brief/trafilatura"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	Config *Config

	// Services for end-to-end testing.
	SummaryService brief.SummaryService
	ContentService brief.ContentService

	fetcher brief.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("brief"),
		kong.Description("Summarize web pages and PDFs with hosted language models."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'brief --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := LoadConfig(m.Environ)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", brief.ErrorMessage(err))
			return err
		}
		m.Config = cfg
	}

	name := strings.Fields(kongCtx.Command())[0]

	// Only the server logs at the configured level by default; one-shot
	// commands keep stderr quiet unless asked.
	level, _ := m.Config.Level()
	switch {
	case cli.Verbose:
		level = slog.LevelDebug
	case name != "serve":
		level = slog.LevelWarn
	}
	deps.Logger = m.Config.NewLogger(stderr, level)

	if m.SummaryService == nil {
		svc, err := m.newSummaryService(ctx, deps.Logger)
		if err != nil {
			return err
		}
		m.SummaryService = svc
	}
	deps.Summaries = m.SummaryService

	if m.ContentService == nil && name != "providers" {
		svc, err := m.newContentService(deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set BRIEF_FETCHER=http if Chrome or Chromium is not installed")
			return err
		}
		m.ContentService = svc
	}
	deps.Contents = m.ContentService
	defer m.Close()

	if name == "serve" {
		gin.SetMode(gin.ReleaseMode)

		s := briefhttp.NewServer()
		s.Addr = m.Config.Addr
		if cli.Serve.Addr != "" {
			s.Addr = cli.Serve.Addr
		}
		s.MaxUploadBytes = m.Config.MaxUploadBytes
		s.Logger = deps.Logger
		s.SummaryService = deps.Summaries
		s.ContentService = deps.Contents
		deps.Server = s
	}

	return kongCtx.Run(deps)
}

// newSummaryService wires one logged adapter per provider. Adapters without
// a key are still registered so requests fail with a clear credential error.
func (m *Main) newSummaryService(ctx context.Context, logger *slog.Logger) (*summarize.Service, error) {
	cfg := m.Config

	openaiOpts := []openai.Option{openai.WithTimeout(cfg.ProviderTimeout)}
	if cfg.OpenAIBaseURL != "" {
		openaiOpts = append(openaiOpts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	anthropicOpts := []anthropic.Option{anthropic.WithTimeout(cfg.ProviderTimeout)}
	if cfg.AnthropicBaseURL != "" {
		anthropicOpts = append(anthropicOpts, anthropic.WithBaseURL(cfg.AnthropicBaseURL))
	}
	hfOpts := []huggingface.Option{huggingface.WithTimeout(cfg.ProviderTimeout)}
	if cfg.HuggingFaceBaseURL != "" {
		hfOpts = append(hfOpts, huggingface.WithBaseURL(cfg.HuggingFaceBaseURL))
	}
	geminiOpts := []gemini.Option{gemini.WithTimeout(cfg.ProviderTimeout)}
	if cfg.GeminiBaseURL != "" {
		geminiOpts = append(geminiOpts, gemini.WithBaseURL(cfg.GeminiBaseURL))
	}

	geminiAdapter, err := gemini.NewAdapter(ctx, cfg.GeminiAPIKey, geminiOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	adapters := map[brief.Provider]brief.Adapter{
		brief.ProviderOpenAI:      openai.NewAdapter(cfg.OpenAIAPIKey, openaiOpts...),
		brief.ProviderAnthropic:   anthropic.NewAdapter(cfg.AnthropicAPIKey, anthropicOpts...),
		brief.ProviderHuggingFace: huggingface.NewAdapter(cfg.HuggingFaceAPIKey, hfOpts...),
		brief.ProviderGemini:      geminiAdapter,
	}
	for p, a := range adapters {
		adapters[p] = briefslog.NewLoggingAdapter(a, p, logger)
	}

	return &summarize.Service{
		Adapters:      adapters,
		ChunkInterval: cfg.ChunkInterval,
		Logger:        logger,
	}, nil
}

// newContentService wires the configured fetcher and extractor.
func (m *Main) newContentService(logger *slog.Logger) (*extract.Service, error) {
	cfg := m.Config

	var fetcher brief.Fetcher
	switch cfg.Fetcher {
	case "rod":
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.FetchTimeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	default:
		fetcher = briefhttp.NewFetcher(briefhttp.WithTimeout(cfg.FetchTimeout))
	}
	m.fetcher = briefslog.NewLoggingFetcher(fetcher, logger)

	var extractor brief.Extractor
	switch cfg.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	return &extract.Service{
		Fetcher:   m.fetcher,
		Extractor: briefslog.NewLoggingExtractor(extractor, logger),
		PDF:       briefslog.NewLoggingPDFExtractor(pdf.NewExtractor(), logger),
	}, nil
}
