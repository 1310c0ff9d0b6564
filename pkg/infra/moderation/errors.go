package moderation

import (
	"errors"
	"fmt"
)

var ErrModerationNotConfigured = errors.New("moderation service not configured: endpoint and api key are required")

// TransportError means no usable response was received after every attempt.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("moderation transport failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamClientError is a 4xx rejection from the moderation service.
type UpstreamClientError struct {
	Status  int
	Message string
}

func (e *UpstreamClientError) Error() string {
	return fmt.Sprintf("moderation service rejected request: status=%d, message=%s", e.Status, e.Message)
}

// UpstreamServerError is a 5xx, or any other non-success status that is not a 4xx.
type UpstreamServerError struct {
	Status  int
	Message string
}

func (e *UpstreamServerError) Error() string {
	return fmt.Sprintf("moderation service failed: status=%d, message=%s", e.Status, e.Message)
}

type ResponseDecodeError struct {
	Err error
}

func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf("failed to decode moderation response: %v", e.Err)
}

func (e *ResponseDecodeError) Unwrap() error {
	return e.Err
}
