// Package common defines shared constants and sentinel errors used across
// the menumap client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors raised before any network call.
	ErrInvalidDraft = errors.New("invalid draft")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Device permission errors. Non-fatal: callers degrade instead of failing.
	ErrPermissionDenied = errors.New("permission denied")
)
