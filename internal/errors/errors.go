package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure. Every kind maps to a distinct HTTP
// status and caller-facing message; anything unclassified is an internal
// error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidVariant
	KindInvalidInterval
	KindInvalidContent
	KindForbidden
	KindAlreadyExists
)

// Error carries a failure kind plus a caller-facing message.
type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string { return e.message }

// KindOf returns the failure kind, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// New creates a classified error with the given message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing user/event/freet/classification.
func NotFound(format string, args ...interface{}) error {
	return New(KindNotFound, format, args...)
}

// InvalidVariant reports an unrecognized timeline variant.
func InvalidVariant(variant string) error {
	return New(KindInvalidVariant, "invalid timeline variant %q", variant)
}

// InvalidInterval reports an event interval whose end does not exceed its
// start.
func InvalidInterval(start, end int64) error {
	return New(KindInvalidInterval, "events must end after they start (start=%d, end=%d)", start, end)
}

// InvalidContent reports an empty required text field.
func InvalidContent(field string) error {
	return New(KindInvalidContent, "%s must not be empty", field)
}

// Forbidden reports a disallowed mutation.
func Forbidden(format string, args ...interface{}) error {
	return New(KindForbidden, format, args...)
}

// AlreadyExists reports a duplicate creation attempt.
func AlreadyExists(format string, args ...interface{}) error {
	return New(KindAlreadyExists, format, args...)
}

// Status maps a failure kind to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidVariant, KindInvalidInterval, KindInvalidContent:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show callers. Unclassified
// errors are masked; their detail belongs in logs only.
func PublicMessage(err error) string {
	if KindOf(err) == KindInternal {
		return "Internal server error"
	}
	return err.Error()
}
