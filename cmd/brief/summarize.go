package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/brief"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps.Ctx, deps.Contents, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brief.ErrorMessage(err))
		return err
	}

	result, err := deps.Summaries.Summarize(deps.Ctx, &brief.SummarizeRequest{
		Content:  content.Content,
		Provider: c.Provider,
		Model:    c.Model,
	})
	if err != nil {
		provider := brief.DefaultProvider
		if p, perr := brief.ParseProvider(c.Provider); perr == nil {
			provider = p
		}
		t := brief.TranslateError(provider, err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", t.Message)
		return t
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", content.Title)
	fmt.Fprintln(deps.Stdout, strings.TrimSpace(result.Summary))
	fmt.Fprintf(deps.Stdout, "\n%s (%s), %d words in\n", result.Provider.DisplayName(), result.Model, content.WordCount)
	return nil
}
