// Package apperr defines the error kinds surfaced by project generation.
//
// Producers wrap one of the sentinels with fmt.Errorf and %w; callers
// classify with errors.Is or HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput marks requests rejected before any filesystem change:
	// an empty spec list, a bad base name, a missing required argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFilesystem marks directory or file creation failures.
	ErrFilesystem = errors.New("filesystem error")

	// ErrParse marks a malformed input spec document.
	ErrParse = errors.New("parse error")
)

// InvalidInput returns an ErrInvalidInput error with a formatted message.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Filesystem wraps an OS error as ErrFilesystem. Both the sentinel and the
// underlying error stay reachable through errors.Is.
func Filesystem(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFilesystem, op, err)
}

// Parse wraps a decoding error as ErrParse.
func Parse(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrParse, source, err)
}

// HTTPStatus maps an error kind to the response status the API returns.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrParse):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Kind returns a short label for metrics and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrFilesystem):
		return "filesystem_error"
	default:
		return "error"
	}
}
