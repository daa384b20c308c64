package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification of an expected domain failure.
// Every operation returns one of these instead of an opaque error so clients
// can render an actionable message.
type Kind string

const (
	KindInvalidTransition     Kind = "invalid_transition"
	KindWindowNotOpen         Kind = "window_not_open"
	KindWindowClosed          Kind = "window_closed"
	KindExpired               Kind = "expired"
	KindQuotaNotMet           Kind = "quota_not_met"
	KindCapacityExceeded      Kind = "capacity_exceeded"
	KindDuplicateConfirmation Kind = "duplicate_confirmation"
	KindAlreadyFrozen         Kind = "already_frozen"
	KindTooFarFromStop        Kind = "too_far_from_stop"
	KindInvalidCode           Kind = "invalid_code"
	KindCommitRejected        Kind = "commit_rejected"
	KindCommitUnavailable     Kind = "commit_unavailable"
	KindLocationUnavailable   Kind = "location_unavailable"
	KindRoutingFailed         Kind = "routing_failed"
	KindVitalsRequired        Kind = "vitals_monitor_required"
	KindUnauthenticated       Kind = "unauthenticated"
	KindNotFound              Kind = "not_found"
)

// Error is a domain failure with a kind and structured detail. It is an
// expected, recoverable-by-caller condition, never a crash.
type Error struct {
	Kind    Kind
	Message string
	// Detail carries numeric context for the failure: shortfall counts,
	// measured distances, current/attempted states.
	Detail map[string]interface{}
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors of the same kind, so sentinel-style comparisons work:
// errors.Is(err, apperrors.New(apperrors.KindQuotaNotMet, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a domain error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a domain error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// WithDetail sets one structured detail field, returning the error for
// chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Detail == nil {
		e.Detail = make(map[string]interface{})
	}
	e.Detail[key] = value
	return e
}

// KindOf extracts the kind from an error chain, or "" for unexpected errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// DetailOf returns the structured detail of a domain error, or nil.
func DetailOf(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return nil
}
