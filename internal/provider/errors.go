package provider

import (
	"fmt"

	"cvpipe/internal/domain"
)

// StatusError indicates a backend returned a non-success HTTP status.
type StatusError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Backend, e.StatusCode, truncate(e.Body, 300))
}

func (e *StatusError) Unwrap() error {
	return domain.ErrProviderUnavailable
}

func NewStatusError(backend string, statusCode int, body string) *StatusError {
	return &StatusError{Backend: backend, StatusCode: statusCode, Body: body}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
