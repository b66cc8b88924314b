package brief

import (
	"context"
	"strings"
)

// Provider identifies an external summarization service.
type Provider string

// Provider constants.
const (
	ProviderOpenAI      Provider = "openai"
	ProviderAnthropic   Provider = "anthropic"
	ProviderHuggingFace Provider = "huggingface"
	ProviderGemini      Provider = "gemini"
)

// DefaultProvider is used when a request does not name a provider.
// It is the only provider with a free tier.
const DefaultProvider = ProviderHuggingFace

// Providers returns all supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderHuggingFace, ProviderOpenAI, ProviderAnthropic, ProviderGemini}
}

var providerAliases = map[string]Provider{
	"openai":      ProviderOpenAI,
	"chatgpt":     ProviderOpenAI,
	"gpt":         ProviderOpenAI,
	"anthropic":   ProviderAnthropic,
	"claude":      ProviderAnthropic,
	"huggingface": ProviderHuggingFace,
	"hf":          ProviderHuggingFace,
	"gemini":      ProviderGemini,
	"google":      ProviderGemini,
}

// ParseProvider resolves a provider name or alias, ignoring case and
// surrounding whitespace. Returns EUNSUPPORTED for unknown names.
func ParseProvider(s string) (Provider, error) {
	p, ok := providerAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", Errorf(EUNSUPPORTED, "unknown provider: %s. Use %s", s, validProviderList())
	}
	return p, nil
}

func validProviderList() string {
	names := make([]string, 0, len(Providers()))
	for _, p := range Providers() {
		names = append(names, "'"+string(p)+"'")
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

// DisplayName returns a human-readable provider name.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "ChatGPT"
	case ProviderAnthropic:
		return "Claude"
	case ProviderHuggingFace:
		return "Hugging Face"
	case ProviderGemini:
		return "Gemini"
	default:
		return string(p)
	}
}

// Description returns a short blurb shown next to the provider in the UI.
func (p Provider) Description() string {
	switch p {
	case ProviderOpenAI:
		return "Fast & Accurate"
	case ProviderAnthropic:
		return "Best Quality"
	case ProviderHuggingFace:
		return "Free (Slower)"
	case ProviderGemini:
		return "Long Context"
	default:
		return ""
	}
}

// Chunked reports whether content must be split into chunks before being
// sent to the provider. Hosted LLMs accept long input up to their own
// ceiling; the hosted summarization model does not.
func (p Provider) Chunked() bool {
	return p == ProviderHuggingFace
}

// Adapter summarizes a single unit of text with one external provider.
type Adapter interface {
	// DefaultModel returns the model used when a request does not override it.
	DefaultModel() string

	// SummarizeOne summarizes text with the given model.
	// Returns EMISSINGCREDENTIALS without network I/O if the adapter has no
	// credential configured.
	SummarizeOne(ctx context.Context, text, model string) (string, error)
}

// Reducer is implemented by adapters that use different generation
// parameters when compressing an already-combined summary.
type Reducer interface {
	Reduce(ctx context.Context, text, model string) (string, error)
}

// CredentialChecker is implemented by adapters that can report whether a
// credential was supplied, without making a network call.
type CredentialChecker interface {
	Configured() bool
}
