// Package common contains shared constants and sentinel errors used across
// the certvera client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Form-level errors.
	ErrUnknownField = errors.New("unknown form field")
	ErrValidation   = errors.New("validation error")

	// Auth errors (token lifecycle, client-side only).
	ErrNoAuthToken  = errors.New("no authentication token found")
	ErrTokenExpired = errors.New("token expired")

	// Remote call errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrBackend     = errors.New("backend error")

	// Export errors.
	ErrExportFailed = errors.New("export failed")
)
