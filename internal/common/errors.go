// Package common defines shared constants and sentinel errors used across
// the layers of the profile service. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors (missing or mismatched api key).
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (invalid record, nothing persisted).
	ErrorValidation = errors.New("validation error")
)
