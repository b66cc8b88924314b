package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/brief"
	briefhttp "github.com/fwojciec/brief/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Summaries brief.SummaryService
	Contents  brief.ContentService
	Server    *briefhttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log provider and fetch calls to stderr"`

	Serve     ServeCmd     `cmd:"" help:"Serve the HTTP API"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a web page or PDF file"`
	Extract   ExtractCmd   `cmd:"" help:"Print the text extracted from a web page or PDF file"`
	Providers ProvidersCmd `cmd:"" help:"List summarization providers"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides BRIEF_ADDR)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Source   string `arg:"" help:"URL or path to a PDF file"`
	Provider string `short:"p" help:"Provider name or alias (default huggingface)"`
	Model    string `short:"m" help:"Override the provider's default model"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"URL or path to a PDF file"`
	JSON   bool   `help:"Print the result as JSON"`
}

// ProvidersCmd is the "providers" subcommand.
type ProvidersCmd struct{}
