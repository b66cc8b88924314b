// Package gemini implements brief.Adapter using Google Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/brief"
	"google.golang.org/genai"
)

// DefaultModel is used when a request does not override the model.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single summarization request.
const DefaultTimeout = 30 * time.Second

// Ensure Adapter implements brief.Adapter at compile time.
var _ brief.Adapter = (*Adapter)(nil)

// Adapter summarizes text with Gemini models.
type Adapter struct {
	client  *genai.Client
	baseURL string
	timeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		a.timeout = d
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(a *Adapter) {
		a.baseURL = u
	}
}

// NewAdapter creates a new Adapter. An empty apiKey yields an adapter whose
// calls always fail with EMISSINGCREDENTIALS.
func NewAdapter(ctx context.Context, apiKey string, opts ...Option) (*Adapter, error) {
	a := &Adapter{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(a)
	}
	if apiKey == "" {
		return a, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: a.timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: a.baseURL},
	})
	if err != nil {
		return nil, err
	}
	a.client = client

	return a, nil
}

// DefaultModel returns the model used when a request does not override it.
func (a *Adapter) DefaultModel() string {
	return DefaultModel
}

// Configured reports whether an API key was supplied.
func (a *Adapter) Configured() bool {
	return a.client != nil
}

// SummarizeOne summarizes text in a single GenerateContent call.
func (a *Adapter) SummarizeOne(ctx context.Context, text, model string) (string, error) {
	if a.client == nil {
		return "", brief.Errorf(brief.EMISSINGCREDENTIALS, "Gemini API key not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", normalizeError(err)
	}
	if result == nil {
		return "", brief.Errorf(brief.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant that creates concise, accurate summaries of articles, blogs, and documents. Format your summary with clear paragraphs separated by double line breaks. Focus on the main points and key takeaways.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt wrapping the content to summarize.
func BuildUserPrompt(text string) string {
	return "Please provide a well-formatted, comprehensive summary of the following text. " +
		"Use paragraphs with line breaks between main points:\n\n<content>\n" + text + "\n</content>"
}

// normalizeError converts SDK errors into brief.APIError.
func normalizeError(err error) error {
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return &brief.APIError{StatusCode: ptr.Code, Code: ptr.Status, Message: ptr.Message}
	}
	var val genai.APIError
	if errors.As(err, &val) {
		return &brief.APIError{StatusCode: val.Code, Code: val.Status, Message: val.Message}
	}
	return err
}
