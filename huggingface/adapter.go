// Package huggingface implements brief.Adapter using the Hugging Face
// Inference API summarization task.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/brief"
)

// DefaultModel is used when a request does not override the model.
const DefaultModel = "facebook/bart-large-cnn"

// DefaultBaseURL is the Hugging Face serverless inference endpoint.
const DefaultBaseURL = "https://router.huggingface.co/hf-inference"

// DefaultTimeout bounds a single summarization request.
const DefaultTimeout = 30 * time.Second

// MinInputLength is the shortest input, in characters after trimming, the
// summarization models produce useful output for.
const MinInputLength = 50

// Generation bounds, in tokens. Reduction over already-summarized text
// allows a longer result.
var (
	chunkParams  = parameters{MaxLength: 130, MinLength: 30}
	reduceParams = parameters{MaxLength: 200, MinLength: 50}
)

// Ensure Adapter implements brief.Adapter and brief.Reducer at compile time.
var (
	_ brief.Adapter = (*Adapter)(nil)
	_ brief.Reducer = (*Adapter)(nil)
)

// Adapter summarizes text with a hosted sequence-to-sequence model.
type Adapter struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  *http.Client
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

// WithBaseURL points the client at a different inference endpoint.
func WithBaseURL(u string) Option {
	return func(a *Adapter) {
		a.baseURL = u
	}
}

// NewAdapter creates a new Adapter. An empty apiKey yields an adapter whose
// calls always fail with EMISSINGCREDENTIALS.
func NewAdapter(apiKey string, opts ...Option) *Adapter {
	a := &Adapter{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.client = &http.Client{
		Timeout: a.timeout,
	}

	return a
}

// DefaultModel returns the model used when a request does not override it.
func (a *Adapter) DefaultModel() string {
	return DefaultModel
}

// Configured reports whether an API key was supplied.
func (a *Adapter) Configured() bool {
	return a.apiKey != ""
}

// SummarizeOne summarizes a single chunk of text.
// Returns ECONTENTTOOSHORT if text is shorter than MinInputLength.
func (a *Adapter) SummarizeOne(ctx context.Context, text, model string) (string, error) {
	return a.summarize(ctx, text, model, chunkParams)
}

// Reduce compresses an already-combined summary.
func (a *Adapter) Reduce(ctx context.Context, text, model string) (string, error) {
	return a.summarize(ctx, text, model, reduceParams)
}

type parameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type result struct {
	SummaryText string `json:"summary_text"`
}

// errorResponse is the error body returned by the inference API.
// Error is usually a string but some backends return a list.
type errorResponse struct {
	Error         json.RawMessage `json:"error"`
	EstimatedTime float64         `json:"estimated_time"`
}

func (a *Adapter) summarize(ctx context.Context, text, model string, params parameters) (string, error) {
	if a.apiKey == "" {
		return "", brief.Errorf(brief.EMISSINGCREDENTIALS, "Hugging Face API key not configured")
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinInputLength {
		return "", brief.Errorf(brief.ECONTENTTOOSHORT, "content too short to summarize (minimum %d characters)", MinInputLength)
	}
	if model == "" {
		model = DefaultModel
	}

	body, err := json.Marshal(request{Inputs: text, Parameters: params})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(a.baseURL, "/") + "/models/" + escapeModel(model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", parseError(resp.StatusCode, raw)
	}

	return parseSummary(raw)
}

// escapeModel escapes each path segment of a model id such as
// "facebook/bart-large-cnn" while keeping the separating slash.
func escapeModel(model string) string {
	parts := strings.Split(model, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func parseSummary(raw []byte) (string, error) {
	var results []result
	if err := json.Unmarshal(raw, &results); err == nil {
		if len(results) == 0 {
			return "", brief.Errorf(brief.EINTERNAL, "hugging face returned no summaries")
		}
		return strings.TrimSpace(results[0].SummaryText), nil
	}

	var single result
	if err := json.Unmarshal(raw, &single); err != nil {
		return "", fmt.Errorf("decode summary: %w", err)
	}
	return strings.TrimSpace(single.SummaryText), nil
}

func parseError(status int, raw []byte) error {
	apiErr := &brief.APIError{StatusCode: status, Message: http.StatusText(status)}

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Error) > 0 {
		apiErr.Message = errorText(body.Error)
	} else if s := strings.TrimSpace(string(raw)); s != "" {
		apiErr.Message = s
	}

	if status == http.StatusServiceUnavailable && body.EstimatedTime > 0 {
		apiErr.Code = brief.EMODELLOADING
	}

	return apiErr
}

func errorText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return string(raw)
}
