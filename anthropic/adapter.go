// Package anthropic implements brief.Adapter using the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/brief"
)

// DefaultModel is used when a request does not override the model.
const DefaultModel = "claude-3-5-sonnet-20241022"

// DefaultTimeout bounds a single summarization request.
const DefaultTimeout = 30 * time.Second

const (
	maxOutputTokens = 1024

	userPromptPrefix = "Please provide a well-formatted, comprehensive summary of the following text. " +
		"Use clear paragraphs with line breaks between main points for better readability. " +
		"Focus on the main points and key takeaways:\n\n"
)

// Ensure Adapter implements brief.Adapter at compile time.
var _ brief.Adapter = (*Adapter)(nil)

// Adapter summarizes text with Claude models.
type Adapter struct {
	client  *anthropic.Client
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
func NewAdapter(apiKey string, opts ...Option) *Adapter {
	a := &Adapter{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(a)
	}
	if apiKey == "" {
		return a
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(a.timeout),
	}
	if a.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(a.baseURL))
	}
	client := anthropic.NewClient(clientOpts...)
	a.client = &client

	return a
}

// DefaultModel returns the model used when a request does not override it.
func (a *Adapter) DefaultModel() string {
	return DefaultModel
}

// Configured reports whether an API key was supplied.
func (a *Adapter) Configured() bool {
	return a.client != nil
}

// SummarizeOne summarizes text in a single message exchange.
func (a *Adapter) SummarizeOne(ctx context.Context, text, model string) (string, error) {
	if a.client == nil {
		return "", brief.Errorf(brief.EMISSINGCREDENTIALS, "Anthropic API key not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxOutputTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPromptPrefix + text)),
		},
	})
	if err != nil {
		return "", normalizeError(err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", brief.Errorf(brief.EINTERNAL, "anthropic returned no text content")
}

// errorBody is the error envelope returned by the Messages API.
type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// normalizeError converts SDK errors into brief.APIError. The message is
// taken from the response body; the SDK's own Error() also carries the
// request method and URL.
func normalizeError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		normalized := &brief.APIError{
			StatusCode: apiErr.StatusCode,
			Message:    http.StatusText(apiErr.StatusCode),
		}
		var body errorBody
		if json.Unmarshal([]byte(apiErr.RawJSON()), &body) == nil {
			normalized.Code = body.Error.Type
			if body.Error.Message != "" {
				normalized.Message = body.Error.Message
			}
		}
		return normalized
	}
	return err
}
