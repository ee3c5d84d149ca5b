package service

import (
	"errors"

	"github.com/ncobase/studyverse/data/repository"
)

// Error kinds. Every error the services return for a client mistake wraps
// one of these.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message and the kind it belongs to.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// ValidationError reports invalid input.
func ValidationError(msg string) error { return newError(ErrValidation, msg) }

// NotFoundError reports a missing or foreign record.
func NotFoundError(msg string) error { return newError(ErrNotFound, msg) }

// UnauthorizedError reports failed authentication.
func UnauthorizedError(msg string) error { return newError(ErrUnauthorized, msg) }

// ConflictError reports a unique key clash.
func ConflictError(msg string) error { return newError(ErrConflict, msg) }

// Message returns the client-facing message of err, or "" when err is not
// a service error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// translate maps repository sentinels to service kinds and passes any other
// error through untouched.
func translate(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return NotFoundError(notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return ConflictError(conflict)
	}
	return err
}
