package brief

import "context"

// SummarizeRequest describes a single summarization request.
type SummarizeRequest struct {
	// Content is the plain text to summarize. Required.
	Content string `json:"content"`

	// Provider is a provider name or alias (e.g. "claude", "hf").
	// Empty selects DefaultProvider.
	Provider string `json:"provider"`

	// Model optionally overrides the provider's default model.
	Model string `json:"model,omitempty"`
}

// SummarizeResult is the outcome of a successful summarization.
type SummarizeResult struct {
	Summary  string   `json:"summary"`
	Provider Provider `json:"provider"`
	Model    string   `json:"model"`

	// Chunks is the number of chunks sent to the provider.
	Chunks int `json:"-"`

	// Reduced reports whether the combined chunk summaries were replaced
	// by a second, compressing summarization pass.
	Reduced bool `json:"-"`
}

// SummaryService produces summaries using external providers.
type SummaryService interface {
	// Summarize summarizes req.Content with the requested provider.
	// Returns EINVALID for empty content and EUNSUPPORTED for an unknown
	// or unconfigured provider, before any network call is made.
	Summarize(ctx context.Context, req *SummarizeRequest) (*SummarizeResult, error)

	// Providers lists the available providers in display order.
	Providers() []*ProviderInfo
}

// ProviderInfo describes an available provider.
type ProviderInfo struct {
	ID           Provider `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DefaultModel string   `json:"defaultModel"`

	// Configured reports whether a credential is present. An unconfigured
	// provider fails every request with EMISSINGCREDENTIALS.
	Configured bool `json:"configured"`
}
