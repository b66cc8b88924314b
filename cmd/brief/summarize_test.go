package main_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/brief"
	main "github.com/fwojciec/brief/cmd/brief"
	"github.com/fwojciec/brief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("summarizes a url", func(t *testing.T) {
		t.Parallel()

		contents := &mock.ContentService{
			ExtractURLFn: func(_ context.Context, url string) (*brief.Content, error) {
				assert.Equal(t, "https://example.com/news", url)
				return &brief.Content{Content: "The council approved the harbor budget.", Title: "Harbor", WordCount: 6}, nil
			},
		}
		summaries := &mock.SummaryService{
			SummarizeFn: func(_ context.Context, req *brief.SummarizeRequest) (*brief.SummarizeResult, error) {
				assert.Equal(t, "The council approved the harbor budget.", req.Content)
				assert.Equal(t, "claude", req.Provider)
				assert.Equal(t, "claude-3-haiku", req.Model)
				return &brief.SummarizeResult{Summary: " Budget approved. ", Provider: brief.ProviderAnthropic, Model: "claude-3-haiku"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Summaries: summaries,
			Contents:  contents,
		}

		cmd := &main.SummarizeCmd{Source: "https://example.com/news", Provider: "claude", Model: "claude-3-haiku"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Harbor")
		assert.Contains(t, output, "Budget approved.\n")
		assert.Contains(t, output, "Claude (claude-3-haiku)")
	})

	t.Run("summarizes a pdf file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "minutes.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o600))

		contents := &mock.ContentService{
			ExtractPDFFn: func(_ context.Context, name string, _ io.ReaderAt, size int64) (*brief.Content, error) {
				assert.Equal(t, "minutes.pdf", name)
				assert.Equal(t, int64(13), size)
				return &brief.Content{Content: "Minutes text.", Title: "minutes", PageCount: 1}, nil
			},
		}
		summaries := &mock.SummaryService{
			SummarizeFn: func(context.Context, *brief.SummarizeRequest) (*brief.SummarizeResult, error) {
				return &brief.SummarizeResult{Summary: "Summary.", Provider: brief.ProviderHuggingFace, Model: "facebook/bart-large-cnn"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Summaries: summaries, Contents: contents}

		err := (&main.SummarizeCmd{Source: path}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Summary.")
	})

	t.Run("prints translated provider error", func(t *testing.T) {
		t.Parallel()

		contents := &mock.ContentService{
			ExtractURLFn: func(context.Context, string) (*brief.Content, error) {
				return &brief.Content{Content: "text"}, nil
			},
		}
		summaries := &mock.SummaryService{
			SummarizeFn: func(context.Context, *brief.SummarizeRequest) (*brief.SummarizeResult, error) {
				return nil, brief.Errorf(brief.EMISSINGCREDENTIALS, "OpenAI API key not configured")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Summaries: summaries, Contents: contents}

		err := (&main.SummarizeCmd{Source: "https://example.com", Provider: "openai"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "OPENAI_API_KEY")
		var pe *brief.ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, brief.EMISSINGCREDENTIALS, pe.Code)
	})

	t.Run("reports missing source file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Contents: &mock.ContentService{}}

		err := (&main.SummarizeCmd{Source: filepath.Join(t.TempDir(), "missing.pdf")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, brief.ENOTFOUND, brief.ErrorCode(err))
		assert.Contains(t, stderr.String(), "neither a URL nor an existing file")
	})
}
