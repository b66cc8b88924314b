package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/brief"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps.Ctx, deps.Contents, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brief.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(content)
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", content.Title)
	fmt.Fprintf(deps.Stdout, "Words: %d\n", content.WordCount)
	if content.PageCount > 0 {
		fmt.Fprintf(deps.Stdout, "Pages: %d\n", content.PageCount)
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", content.Content)
	return nil
}
