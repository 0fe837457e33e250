// Package failure defines the error kinds surfaced by the analysis pipeline.
package failure

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a pipeline failure. Callers branch on Kind, not on messages.
type Kind string

const (
	InvalidInput       Kind = "InvalidInput"
	NotFound           Kind = "NotFound"
	ConfigurationError Kind = "ConfigurationError"
	ToolNotFound       Kind = "ToolNotFound"
	DownloadFailed     Kind = "DownloadFailed"
	DownloadTimeout    Kind = "DownloadTimeout"
	ExtractionFailed   Kind = "ExtractionFailed"
	ExtractionTimeout  Kind = "ExtractionTimeout"
	ApiError           Kind = "ApiError"
	ApiTimeout         Kind = "ApiTimeout"
	InternalError      Kind = "InternalError"
)

// Error is a kind-tagged failure with optional HTTP context.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

// Error formats the failure as "<Kind>: <message>[: <cause>]".
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (%d): %s", msg, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a failure of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a failure of the given kind around err.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// API creates an ApiError carrying the response status and body.
func API(status int, body string, format string, args ...any) *Error {
	return &Error{
		Kind:       ApiError,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
		Body:       body,
	}
}

// KindOf returns the kind of the outermost *Error in err's chain,
// or InternalError when there is none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return InternalError
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsTimeout reports whether err stems from an expired deadline or a network timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
