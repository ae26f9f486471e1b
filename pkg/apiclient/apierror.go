package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is matched with errors.Is to route a 401 to a
// re-authentication prompt instead of silently swallowing it.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the backend. Detail carries the
// backend-provided message extracted from the `{"detail": ...}` error body,
// falling back to the HTTP status text when the body is not parseable JSON.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// newAPIError builds an APIError from a response status and raw body.
func newAPIError(statusCode int, statusText string, body []byte) *APIError {
	return &APIError{StatusCode: statusCode, Detail: errorDetail(statusText, body)}
}

func errorDetail(statusText string, body []byte) string {
	if !json.Valid(body) {
		return statusText
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return string(body)
}
