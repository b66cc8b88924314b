package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/brief/cmd/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"serve", "summarize", "extract", "providers"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesSummarizeFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"summarize", "https://example.com", "-p", "claude", "-m", "claude-3-haiku"})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cli.Summarize.Source)
	assert.Equal(t, "claude", cli.Summarize.Provider)
	assert.Equal(t, "claude-3-haiku", cli.Summarize.Model)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
