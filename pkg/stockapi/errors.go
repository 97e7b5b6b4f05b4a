package stockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError represents a non-200 response from the backend.
type APIError struct {
	StatusCode int
	// Message is the body's "error" field. Empty when the body was not JSON
	// or carried no such field.
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, msg)
}

// IsNotFound returns true if the error is a 404 Not Found.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// TransportError is returned when no response was received at all.
type TransportError struct {
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 200 response body is not a valid snapshot.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// errorResponse represents the JSON structure of backend error bodies.
type errorResponse struct {
	Error string `json:"error"`
}

// checkResponse returns an *APIError for any status other than 200.
func checkResponse(resp *resty.Response, requestID string) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		RequestID:  requestID,
	}

	body := resp.Body()
	if len(body) == 0 {
		return apiErr
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		// Body is not JSON, the caller falls back to a default message
		return apiErr
	}
	apiErr.Message = errResp.Error

	return apiErr
}

// AsAPIError reports whether err is, or wraps, an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransport reports whether err means no response was received.
// Cancellation by the caller is not a transport failure.
func IsTransport(err error) bool {
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		return false
	}
	return !errors.Is(err, context.Canceled)
}
