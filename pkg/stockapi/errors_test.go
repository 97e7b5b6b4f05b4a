package stockapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with message",
			err:      &APIError{StatusCode: 404, Message: "Unknown symbol"},
			expected: "API error (404): Unknown symbol",
		},
		{
			name:     "without message uses status text",
			err:      &APIError{StatusCode: 404},
			expected: "API error (404): Not Found",
		},
		{
			name:     "server error without message",
			err:      &APIError{StatusCode: 500},
			expected: "API error (500): Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_IsNotFound(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).IsNotFound())
	assert.False(t, (&APIError{StatusCode: 500}).IsNotFound())
}

func TestAsAPIError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup AAPL: %w", &APIError{StatusCode: 404, Message: "Unknown symbol"})

	apiErr, ok := AsAPIError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Unknown symbol", apiErr.Message)

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", &TransportError{Err: errors.New("connection refused")}, true},
		{"wrapped transport", fmt.Errorf("fetch: %w", &TransportError{Err: errors.New("reset")}), true},
		{"deadline is transport", &TransportError{Err: context.DeadlineExceeded}, true},
		{"cancelled is not transport", &TransportError{Err: context.Canceled}, false},
		{"api error", &APIError{StatusCode: 500}, false},
		{"decode error", &DecodeError{Err: errors.New("bad json")}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransport(tt.err))
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Err: context.Canceled}
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "request failed")
}
