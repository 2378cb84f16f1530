package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Resource string
		ID       string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string   { return e.Resource + " " + e.ID + " not found" }
func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match the typed errors against their sentinels
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPackaging    = errors.New("archive packaging failed")
)

// PackagingError reports that the archive could not be serialized.
// Content preparation had already completed; nothing was delivered.
type PackagingError struct {
	Stage string // "write", "finalize", "limit"
	Err   error
}

// Error implements the error interface
func (e *PackagingError) Error() string {
	return "archive packaging failed (" + e.Stage + "): " + e.Err.Error()
}

// Unwrap exposes the underlying cause
func (e *PackagingError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrPackaging
func (e *PackagingError) Is(target error) bool {
	return target == ErrPackaging
}

// StatusCode implements the HTTPError interface
func (e *PackagingError) StatusCode() int {
	return http.StatusInternalServerError
}
