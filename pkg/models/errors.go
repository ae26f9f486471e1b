package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ErrNoAnalysis is returned when supervision response generation is requested
// before any successful document analysis in the session.
var ErrNoAnalysis = errors.New("no analysis: upload and analyze a document first")

// ErrEmptyQuery is returned when a legal query is empty or whitespace-only.
// Rejected client-side before any network call.
var ErrEmptyQuery = errors.New("query must not be empty")

// ErrBadRequest wraps validation failures surfaced as HTTP 400.
var ErrBadRequest = errors.New("bad request")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
