package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error into one of the stable,
// externally-distinguishable categories.
type ErrorKind int

const (
	// KindNotFound means a referenced entity does not exist, or the actor
	// has no visibility into it.
	KindNotFound ErrorKind = iota
	// KindBadRequest means a domain rule was violated by the request.
	KindBadRequest
	// KindInvalidState means a booking-state filter token was not recognized.
	KindInvalidState
	// KindConflict means a uniqueness constraint was violated.
	KindConflict
)

// Error is the domain error type carried across service and store boundaries.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing entity of the given type.
func NewNotFoundError(entity string, id interface{}) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id %v not found", entity, id),
	}
}

// NewValidationError reports a domain-rule violation.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NewInvalidStateError reports an unrecognized booking-state token.
func NewInvalidStateError(token string) *Error {
	return &Error{Kind: KindInvalidState, Message: "Unknown state: " + token}
}

// NewConflictError reports a uniqueness violation surfaced by the store.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of err if it is a domain Error, and whether it was one.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}
