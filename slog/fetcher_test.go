package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/brief/mock"
	briefslog "github.com/fwojciec/brief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		html      string
		err       error
		wantLevel string
		wantAttrs []string
	}{
		{
			name:      "success",
			html:      "<p>Harbor budget</p>",
			wantLevel: "level=INFO",
			wantAttrs: []string{"url=https://news.example.com/harbor", "bytes=20", "duration="},
		},
		{
			name:      "failure",
			err:       errors.New("connection refused"),
			wantLevel: "level=WARN",
			wantAttrs: []string{"bytes=0", `err="connection refused"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			inner := &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://news.example.com/harbor", url)
					return tt.html, tt.err
				},
			}

			html, err := briefslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://news.example.com/harbor")

			assert.Equal(t, tt.html, html)
			assert.ErrorIs(t, err, tt.err)
			output := buf.String()
			assert.Contains(t, output, `msg="fetch page"`)
			assert.Contains(t, output, tt.wantLevel)
			for _, attr := range tt.wantAttrs {
				assert.Contains(t, output, attr)
			}
		})
	}
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("quiet on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closed := false
		inner := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}

		err := briefslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).Close()

		require.NoError(t, err)
		assert.True(t, closed)
		assert.Empty(t, buf.String())
	})

	t.Run("logs failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closeErr := errors.New("browser already gone")
		inner := &mock.Fetcher{CloseFn: func() error { return closeErr }}

		err := briefslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).Close()

		require.ErrorIs(t, err, closeErr)
		assert.Contains(t, buf.String(), `err="browser already gone"`)
	})
}
