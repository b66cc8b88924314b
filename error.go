package brief

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL           = "internal"
	EINVALID            = "invalid"
	ENOTFOUND           = "not_found"
	EUNSUPPORTED        = "unsupported"
	EMISSINGCREDENTIALS = "missing_credentials"
	EUNAUTHORIZED       = "unauthorized"
	EFORBIDDEN          = "forbidden"
	ERATELIMITED        = "rate_limited"
	EQUOTA              = "quota_exceeded"
	EMODELLOADING       = "model_loading"
	ECONTENTTOOSHORT    = "content_too_short"
	EALLCHUNKSTOOSHORT  = "all_chunks_too_short"
	EMALFORMEDCONTENT   = "malformed_content"
	EUNKNOWN            = "unknown"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("brief error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// APIError is an upstream provider failure normalized by an adapter.
// Adapters convert SDK and HTTP errors into this shape so the error
// translator never needs to know about a particular client library.
type APIError struct {
	// StatusCode is the HTTP status returned by the provider, or 0 if the
	// request never produced a response.
	StatusCode int

	// Code is the provider's machine-readable error code, if any
	// (e.g. "insufficient_quota").
	Code string

	// Message is the provider's human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}
