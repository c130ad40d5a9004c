package errors

import (
	"errors"
	"fmt"
)

const ConnectionErrorMessage = "Connection error. Please try again."

// ValidationError is a local, pre-network failure. It blocks the action and its message
// names the rule that failed.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (v *ValidationError) Error() string {
	return v.Message
}

// RemoteError means the server answered but declined the operation.
type RemoteError struct {
	Code int
	// Message is the message supplied by the server, if any.
	Message string
}

func (r *RemoteError) Error() string {
	if r.Message != "" {
		return fmt.Sprintf("remote error (%d): %s", r.Code, r.Message)
	}
	return fmt.Sprintf("remote error (%d)", r.Code)
}

// Unwrap maps the status code to its sentinel so callers can match e.g. Unauthorized.
func (r *RemoteError) Unwrap() error {
	if r.Code < 400 {
		return nil
	}
	return FromStatusCode(r.Code)
}

// TransportError means the request could not complete or the response could not be parsed.
type TransportError struct {
	Err error
}

func (t *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", t.Err)
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsRemote(err error) bool {
	var r *RemoteError
	return errors.As(err, &r)
}

func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// UserMessage returns the text that may be shown to a user for err. Validation messages are
// shown verbatim, remote errors prefer the server message over fallback and transport errors
// never leak their cause.
func UserMessage(err error, fallback string) string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Message
	}
	var r *RemoteError
	if errors.As(err, &r) {
		if r.Message != "" {
			return r.Message
		}
		return fallback
	}
	if IsTransport(err) {
		return ConnectionErrorMessage
	}
	return fallback
}
