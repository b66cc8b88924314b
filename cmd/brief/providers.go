package main

import (
	"fmt"
)

// Run executes the providers command.
func (c *ProvidersCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Summaries.Providers() {
		status := "configured"
		if !p.Configured {
			status = "no API key"
		}
		fmt.Fprintf(deps.Stdout, "%-12s  %-13s  %-28s  %s\n", p.ID, p.Name, p.DefaultModel, status)
	}
	return nil
}
