//go:build integration

package gemini_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/brief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Integration_ReturnsSummary(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adapter, err := gemini.NewAdapter(ctx, apiKey)
	require.NoError(t, err)

	text := strings.Repeat("Go is an open source programming language that makes it simple to build secure, scalable systems. ", 5)

	summary, err := adapter.SummarizeOne(ctx, text, "")

	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}
