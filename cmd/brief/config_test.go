package main_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/brief"
	main "github.com/fwojciec/brief/cmd/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(map[string]string{})

		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, "http", cfg.Fetcher)
		assert.Equal(t, "goquery", cfg.Extractor)
		assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
		assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
		assert.Zero(t, cfg.ChunkInterval)
		assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
		assert.Empty(t, cfg.OpenAIAPIKey)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(map[string]string{
			"BRIEF_ADDR":             "127.0.0.1:8080",
			"BRIEF_EXTRACTOR":        "trafilatura",
			"BRIEF_CHUNK_INTERVAL":   "250ms",
			"BRIEF_PROVIDER_TIMEOUT": "1m",
			"ANTHROPIC_API_KEY":      "sk-ant",
			"HUGGINGFACE_BASE_URL":   "http://localhost:9000",
		})

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
		assert.Equal(t, "trafilatura", cfg.Extractor)
		assert.Equal(t, 250*time.Millisecond, cfg.ChunkInterval)
		assert.Equal(t, time.Minute, cfg.ProviderTimeout)
		assert.Equal(t, "sk-ant", cfg.AnthropicAPIKey)
		assert.Equal(t, "http://localhost:9000", cfg.HuggingFaceBaseURL)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		for _, environ := range []map[string]string{
			{"BRIEF_EXTRACTOR": "regex"},
			{"BRIEF_LOG_LEVEL": "loud"},
			{"BRIEF_LOG_FORMAT": "xml"},
			{"BRIEF_MAX_UPLOAD_BYTES": "0"},
			{"BRIEF_FETCH_TIMEOUT": "soon"},
		} {
			_, err := main.LoadConfig(environ)
			assert.Equal(t, brief.EINVALID, brief.ErrorCode(err), "%v", environ)
		}
	})
}

func TestConfig_NewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := &main.Config{LogFormat: "text"}

	cfg.NewLogger(&buf, slog.LevelInfo).Info("hello", "k", "v")

	assert.Contains(t, buf.String(), "msg=hello k=v")
}
