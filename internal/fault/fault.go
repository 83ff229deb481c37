// Package fault classifies pipeline failures so retry decisions are a pure
// function of the error kind rather than of error types.
package fault

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the failure classification.
type Kind int

const (
	// KindUnknown covers errors produced outside the pipeline.
	KindUnknown Kind = iota
	// KindInvalidInput marks bad paths, empty files, malformed credentials.
	KindInvalidInput
	// KindUnsupportedMedia marks videos, animated images, unknown extensions.
	// It is a skip signal, not a system fault.
	KindUnsupportedMedia
	// KindProcessingFailed marks image toolkit failures.
	KindProcessingFailed
	// KindTransient marks network errors, timeouts and non-2xx responses.
	KindTransient
	// KindCancelled marks a user-initiated abort. Always terminal.
	KindCancelled
	// KindInsufficientBalance is surfaced before submission is attempted.
	KindInsufficientBalance
	// KindUploadFailed marks an exhausted retry loop, wrapping the last cause.
	KindUploadFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnsupportedMedia:
		return "unsupported_media"
	case KindProcessingFailed:
		return "processing_failed"
	case KindTransient:
		return "transient"
	case KindCancelled:
		return "cancelled"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindUploadFailed:
		return "upload_failed"
	default:
		return "unknown"
	}
}

// Error pairs a kind with its underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with the given kind.
func New(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// Errorf wraps a formatted message with the given kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind of err. Context cancellation maps to
// KindCancelled; anything unclassified is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the submitter's backoff loop may retry an error
// of this kind. Only transient failures are retried.
func Retryable(kind Kind) bool {
	return kind == KindTransient
}
