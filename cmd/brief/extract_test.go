package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/brief"
	main "github.com/fwojciec/brief/cmd/brief"
	"github.com/fwojciec/brief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	contents := &mock.ContentService{
		ExtractURLFn: func(context.Context, string) (*brief.Content, error) {
			return &brief.Content{Content: "Harbor budget approved.", Title: "Harbor", WordCount: 3}, nil
		},
	}

	t.Run("prints title, word count and text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Contents: contents}

		err := (&main.ExtractCmd{Source: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Title: Harbor")
		assert.Contains(t, output, "Words: 3")
		assert.NotContains(t, output, "Pages:")
		assert.Contains(t, output, "Harbor budget approved.")
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Contents: contents}

		err := (&main.ExtractCmd{Source: "https://example.com", JSON: true}).Run(deps)

		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Harbor", got["title"])
		assert.EqualValues(t, 3, got["wordCount"])
	})

	t.Run("prints extraction error", func(t *testing.T) {
		t.Parallel()

		failing := &mock.ContentService{
			ExtractURLFn: func(context.Context, string) (*brief.Content, error) {
				return nil, brief.Errorf(brief.EINVALID, "Could not extract meaningful content from URL")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Contents: failing}

		err := (&main.ExtractCmd{Source: "https://example.com"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Could not extract meaningful content from URL")
	})
}
