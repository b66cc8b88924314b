// Package openai implements brief.Adapter using the OpenAI Chat Completions API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/brief"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when a request does not override the model.
const DefaultModel = "gpt-4o-mini"

// DefaultTimeout bounds a single summarization request.
const DefaultTimeout = 30 * time.Second

const (
	temperature     = 0.3
	maxOutputTokens = 500

	systemPrompt = "You are a helpful assistant that creates concise, accurate summaries of articles, blogs, and documents. " +
		"Format your summary with clear paragraphs separated by double line breaks for better readability. " +
		"Focus on the main points and key takeaways."

	userPromptPrefix = "Please provide a well-formatted, comprehensive summary of the following text. " +
		"Use paragraphs with line breaks between main points for better readability:\n\n"
)

// Ensure Adapter implements brief.Adapter at compile time.
var _ brief.Adapter = (*Adapter)(nil)

// Adapter summarizes text with OpenAI chat models.
type Adapter struct {
	client  *openai.Client
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
	client := openai.NewClient(clientOpts...)
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

// SummarizeOne summarizes text in a single chat completion.
func (a *Adapter) SummarizeOne(ctx context.Context, text, model string) (string, error) {
	if a.client == nil {
		return "", brief.Errorf(brief.EMISSINGCREDENTIALS, "OpenAI API key not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPromptPrefix + text),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxOutputTokens),
	})
	if err != nil {
		return "", normalizeError(err)
	}
	if len(completion.Choices) == 0 {
		return "", brief.Errorf(brief.EINTERNAL, "openai returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// normalizeError converts SDK errors into brief.APIError.
func normalizeError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.StatusCode)
		}
		return &brief.APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    msg,
		}
	}
	return err
}
