// Package apperrors defines the error types the handlers translate into HTTP
// responses. Repositories and services return these instead of raw driver errors.
package apperrors

import (
	"fmt"
	"net/http"
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// ConflictError reports a unique-constraint violation on Field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// NotFoundError reports a well-formed id with no matching document.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// InvalidIDError reports a malformed identifier, distinct from not-found.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid ID format: %s", e.ID)
}

// AuthError reports a missing (401) or invalid (403) admin credential.
type AuthError struct {
	Missing bool
}

func (e *AuthError) Error() string {
	if e.Missing {
		return "admin token is required"
	}
	return "invalid admin credentials"
}

func (e *AuthError) StatusCode() int {
	if e.Missing {
		return http.StatusUnauthorized
	}
	return http.StatusForbidden
}

// AggregationError reports a failed underlying query during a composite read.
// The whole aggregate aborts; there is no partial-result fallback.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed: %v", e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// UpstreamError reports a failure from an external service (image CDN, mail).
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
