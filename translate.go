package brief

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ProviderError is a summarization failure translated into a stable,
// user-actionable message and an HTTP status code.
type ProviderError struct {
	Provider Provider
	Code     string
	Status   int
	Message  string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return e.Message
}

// TranslateError maps a failure raised while summarizing with provider p to
// a ProviderError. It is a pure function of its inputs.
//
// Structured signals (application error codes, upstream status codes) are
// checked before message substrings. The substring rules mirror what the
// providers currently put in their error text and will silently stop
// matching if that text changes upstream; keep them in this file.
func TranslateError(p Provider, err error) *ProviderError {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	switch ErrorCode(err) {
	case EINVALID, EUNSUPPORTED:
		return &ProviderError{Provider: p, Code: ErrorCode(err), Status: http.StatusBadRequest, Message: ErrorMessage(err)}
	}

	var t *ProviderError
	switch p {
	case ProviderOpenAI:
		t = translateOpenAI(err)
	case ProviderAnthropic:
		t = translateAnthropic(err)
	case ProviderGemini:
		t = translateGemini(err)
	case ProviderHuggingFace:
		t = translateHuggingFace(err)
	default:
		t = &ProviderError{
			Code:    EINTERNAL,
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("Unexpected error: %s. Please try again or contact support.", errorDetail(err)),
		}
	}
	t.Provider = p
	return t
}

func translateOpenAI(err error) *ProviderError {
	status, code := upstream(err)
	switch {
	case isMissingCredentials(err, status):
		return translated(EMISSINGCREDENTIALS, http.StatusInternalServerError,
			"OpenAI API key not configured. Add OPENAI_API_KEY to the environment or switch to Hugging Face (free).")
	case code == "insufficient_quota":
		return translated(EQUOTA, http.StatusTooManyRequests,
			"OpenAI API quota exceeded. Add credits at https://platform.openai.com/account/billing or use Hugging Face (free).")
	case status == http.StatusUnauthorized:
		return translated(EUNAUTHORIZED, http.StatusUnauthorized,
			"Invalid OpenAI API key. Check your key at https://platform.openai.com/api-keys or use Hugging Face (free).")
	case status == http.StatusTooManyRequests:
		return translated(ERATELIMITED, http.StatusTooManyRequests,
			"OpenAI rate limit exceeded. Wait a moment or use Hugging Face (free).")
	}
	return translated(EUNKNOWN, http.StatusInternalServerError,
		fmt.Sprintf("ChatGPT Error: %s. Try Hugging Face (free) instead.", errorDetail(err)))
}

func translateAnthropic(err error) *ProviderError {
	status, _ := upstream(err)
	switch {
	case isMissingCredentials(err, status):
		return translated(EMISSINGCREDENTIALS, http.StatusInternalServerError,
			"Anthropic API key not configured. Add ANTHROPIC_API_KEY to the environment or switch to Hugging Face.")
	case status == http.StatusUnauthorized:
		return translated(EUNAUTHORIZED, http.StatusUnauthorized,
			"Invalid Anthropic API key. Check your key or use Hugging Face.")
	case status == http.StatusTooManyRequests:
		return translated(ERATELIMITED, http.StatusTooManyRequests,
			"Claude API rate limit exceeded. Wait a moment or use Hugging Face.")
	}
	return translated(EUNKNOWN, http.StatusInternalServerError,
		fmt.Sprintf("Claude Error: %s. Try Hugging Face instead.", errorDetail(err)))
}

func translateGemini(err error) *ProviderError {
	status, _ := upstream(err)
	switch {
	case isMissingCredentials(err, status):
		return translated(EMISSINGCREDENTIALS, http.StatusInternalServerError,
			"Gemini API key not configured. Get a key at https://aistudio.google.com/apikey and set GEMINI_API_KEY, or switch to Hugging Face (free).")
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return translated(EUNAUTHORIZED, http.StatusUnauthorized,
			"Invalid Gemini API key. Check your key at https://aistudio.google.com/apikey or use Hugging Face (free).")
	case status == http.StatusTooManyRequests:
		return translated(ERATELIMITED, http.StatusTooManyRequests,
			"Gemini API rate limit exceeded. Wait a moment or use Hugging Face (free).")
	}
	return translated(EUNKNOWN, http.StatusInternalServerError,
		fmt.Sprintf("Gemini Error: %s. Try Hugging Face (free) instead.", errorDetail(err)))
}

func translateHuggingFace(err error) *ProviderError {
	status, code := upstream(err)
	switch {
	case status == http.StatusForbidden || messageContains(err, "permissions"):
		return translated(EFORBIDDEN, http.StatusForbidden,
			`Hugging Face token needs "Inference Providers" permission. Recreate token at https://huggingface.co/settings/tokens`)
	case code == EMODELLOADING || ErrorCode(err) == EMODELLOADING || messageContains(err, "loading"):
		return translated(EMODELLOADING, http.StatusServiceUnavailable,
			"Model is loading (first time takes 30-60s). Please wait and try again.")
	case ErrorCode(err) == EALLCHUNKSTOOSHORT:
		return translated(EALLCHUNKSTOOSHORT, http.StatusBadRequest,
			"Every section of the content was too short to summarize. Need at least 50 characters of text per section.")
	case ErrorCode(err) == ECONTENTTOOSHORT || messageContains(err, "too short"):
		return translated(ECONTENTTOOSHORT, http.StatusBadRequest,
			"Content is too short to summarize. Need at least 50 characters of text.")
	case messageContains(err, "index out of range"):
		return translated(EMALFORMEDCONTENT, http.StatusBadRequest,
			"PDF content format issue. Try a different PDF or use a URL instead.")
	case isMissingCredentials(err, status):
		return translated(EMISSINGCREDENTIALS, http.StatusInternalServerError,
			"Hugging Face API key not configured. Add HUGGINGFACE_API_KEY to the environment.")
	case status == http.StatusUnauthorized:
		return translated(EUNAUTHORIZED, http.StatusUnauthorized,
			"Invalid Hugging Face token. Check your token at https://huggingface.co/settings/tokens")
	case status == http.StatusTooManyRequests:
		return translated(ERATELIMITED, http.StatusTooManyRequests,
			"Hugging Face rate limit exceeded. Wait a moment and try again.")
	}
	return translated(EUNKNOWN, http.StatusInternalServerError,
		fmt.Sprintf("Hugging Face Error: %s. Try again or switch to another provider.", errorDetail(err)))
}

func translated(code string, status int, msg string) *ProviderError {
	return &ProviderError{Code: code, Status: status, Message: msg}
}

// isMissingCredentials matches the adapters' own missing-credential error
// and, for errors that never reached the provider, any message mentioning
// an API key. Upstream responses often mention "API key" too (e.g. an
// invalid key), so the substring fallback is skipped once a status exists.
func isMissingCredentials(err error, status int) bool {
	if ErrorCode(err) == EMISSINGCREDENTIALS {
		return true
	}
	return status == 0 && messageContains(err, "API key")
}

// upstream returns the status and code of a normalized provider error.
func upstream(err error) (status int, code string) {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode, e.Code
	}
	return 0, ""
}

func messageContains(err error, substr string) bool {
	return strings.Contains(errorDetail(err), substr)
}

// errorDetail returns the most specific human-readable message in err.
func errorDetail(err error) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
