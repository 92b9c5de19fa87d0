package domainerror

import (
	"errors"
	"fmt"
)

// Code is one of the stable, client-visible error codes. The vocabulary is
// deliberately small: every failure in the system resolves to one of these.
type Code string

const (
	// Local validation, never reaches the network.
	CodeEmptyText   Code = "empty_text"
	CodeTextTooLong Code = "text_too_long"
	CodeUnknownKind Code = "unknown_message_type"

	// Dispatcher-side transport outcomes.
	CodeTimeout         Code = "timeout"
	CodeRequestFailed   Code = "request_failed"
	CodeProxyError      Code = "proxy_error"
	CodeInvalidResponse Code = "invalid_response"
	CodeNoAnalysis      Code = "no_analysis"
	CodeNoAudio         Code = "no_audio"

	// Handler-side codes, surfaced to the dispatcher through proxy_error.
	CodeInvalidJSON        Code = "invalid_json"
	CodeMethodNotAllowed   Code = "method_not_allowed"
	CodeMissingText        Code = "missing_text"
	CodeServerMisconfig    Code = "server_misconfigured"
	CodeOpenAIError        Code = "openai_error"
	CodeElevenError        Code = "eleven_error"
	CodeTTSNotConfigured   Code = "tts_not_configured"
	CodeTTSFailed          Code = "tts_failed"
	CodeNoTranslation      Code = "no_translation"
	CodeInvalidAnalysis    Code = "invalid_analysis"
	CodeRateLimited        Code = "rate_limited"
	CodeInternal           Code = "internal_error"
)

// ProxyError is the structured error for both sides of the proxy layer.
type ProxyError struct {
	Code           Code
	Message        string
	Cause          error
	ReqID          string
	HTTPStatus     int    // status this error maps to on the wire
	UpstreamStatus int    // status the upstream provider returned, if any
	Raw            string // raw provider payload preserved for diagnostics
}

// Error implements the error interface.
func (e *ProxyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ProxyError) Unwrap() error {
	return e.Cause
}

// Is matches errors by code.
func (e *ProxyError) Is(target error) bool {
	t, ok := target.(*ProxyError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithReqID attaches a request ID to the error.
func (e *ProxyError) WithReqID(reqID string) *ProxyError {
	e.ReqID = reqID
	return e
}

// WithRaw attaches the raw provider payload to the error.
func (e *ProxyError) WithRaw(raw string) *ProxyError {
	e.Raw = raw
	return e
}

// GetHTTPStatus returns the HTTP status the error maps to.
func (e *ProxyError) GetHTTPStatus() int {
	if e.HTTPStatus > 0 {
		return e.HTTPStatus
	}
	switch e.Code {
	case CodeInvalidJSON, CodeMissingText, CodeTextTooLong, CodeEmptyText, CodeUnknownKind:
		return 400
	case CodeMethodNotAllowed:
		return 405
	case CodeRateLimited:
		return 429
	case CodeOpenAIError, CodeElevenError, CodeTTSFailed, CodeNoTranslation, CodeInvalidAnalysis:
		return 502
	default:
		return 500
	}
}

// New creates a new ProxyError.
func New(code Code, message string) *ProxyError {
	return &ProxyError{Code: code, Message: message}
}

// Wrap wraps an existing error with proxy error context.
func Wrap(err error, code Code, message string) *ProxyError {
	return &ProxyError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var pe *ProxyError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// AsProxyError extracts a ProxyError, converting foreign errors to internal
// ones so callers always have a code to work with.
func AsProxyError(err error) *ProxyError {
	var pe *ProxyError
	if errors.As(err, &pe) {
		return pe
	}
	return Wrap(err, CodeInternal, "unexpected error")
}

// Constructors, one per failure surface.

// NewEmptyText reports text that is empty after trimming.
func NewEmptyText() *ProxyError {
	return New(CodeEmptyText, "text is empty")
}

// NewTextTooLong reports text over the length bound.
func NewTextTooLong(length int) *ProxyError {
	return New(CodeTextTooLong, fmt.Sprintf("text is %d characters, limit is 10000", length))
}

// NewUnknownKind reports an unrecognized request kind.
func NewUnknownKind(kind string) *ProxyError {
	return New(CodeUnknownKind, fmt.Sprintf("unknown message type: %s", kind))
}

// NewTimeout reports a deadline expiry on the proxy call.
func NewTimeout() *ProxyError {
	return New(CodeTimeout, "request deadline exceeded")
}

// NewRequestFailed reports a transport-level failure reaching the proxy.
func NewRequestFailed(cause error) *ProxyError {
	return Wrap(cause, CodeRequestFailed, "request to proxy failed")
}

// NewProxyUpstreamError reports a non-2xx response from the proxy handler.
// The body is carried best-effort and may be empty.
func NewProxyUpstreamError(status int, body string) *ProxyError {
	e := New(CodeProxyError, fmt.Sprintf("proxy returned status %d", status))
	e.UpstreamStatus = status
	e.Raw = body
	return e
}

// NewMethodNotAllowed reports a non-POST request to the handler.
func NewMethodNotAllowed(method string) *ProxyError {
	return New(CodeMethodNotAllowed, fmt.Sprintf("method %s not allowed", method))
}

// NewInvalidJSON reports a malformed request body.
func NewInvalidJSON(cause error) *ProxyError {
	return Wrap(cause, CodeInvalidJSON, "request body is not valid JSON")
}

// NewMissingText reports a request without text.
func NewMissingText() *ProxyError {
	return New(CodeMissingText, "text is required")
}

// NewServerMisconfigured reports a missing upstream API key.
func NewServerMisconfigured() *ProxyError {
	return New(CodeServerMisconfig, "chat provider API key is not configured")
}

// NewOpenAIError reports a non-2xx response from the chat provider.
func NewOpenAIError(status int, detail string) *ProxyError {
	e := New(CodeOpenAIError, "chat provider request failed")
	e.UpstreamStatus = status
	e.Raw = detail
	return e
}

// NewElevenError reports a non-2xx response from the speech provider.
func NewElevenError(status int, detail string) *ProxyError {
	e := New(CodeElevenError, "speech provider request failed")
	e.UpstreamStatus = status
	e.Raw = detail
	return e
}

// NewTTSNotConfigured reports a missing speech key or voice.
func NewTTSNotConfigured() *ProxyError {
	return New(CodeTTSNotConfigured, "speech provider key or voice is not configured")
}

// NewTTSFailed reports a transport failure reaching the speech provider.
func NewTTSFailed(cause error) *ProxyError {
	return Wrap(cause, CodeTTSFailed, "speech provider request failed")
}

// NewNoTranslation reports an upstream success with no translation text.
func NewNoTranslation(raw string) *ProxyError {
	return New(CodeNoTranslation, "provider returned no translation").WithRaw(raw)
}

// NewInvalidAnalysis reports provider output that could not be recovered as
// a structured analysis. The raw text is preserved, never dropped.
func NewInvalidAnalysis(raw string) *ProxyError {
	return New(CodeInvalidAnalysis, "provider output is not a structured analysis").WithRaw(raw)
}

// NewRateLimited reports a rejected request under rate limiting.
func NewRateLimited() *ProxyError {
	return New(CodeRateLimited, "too many requests")
}

// NewInternal reports an unexpected server error.
func NewInternal(message string, cause error) *ProxyError {
	return Wrap(cause, CodeInternal, message)
}
