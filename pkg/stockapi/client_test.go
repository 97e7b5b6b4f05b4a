package stockapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://stocks.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "https://stocks.example.com", client.BaseURL)
	assert.Equal(t, DefaultTimeout, client.Timeout())
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://stocks.example.com/")

	assert.Equal(t, "https://stocks.example.com", client.BaseURL)
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient("https://stocks.example.com", WithTimeout(5*time.Second))

	assert.Equal(t, 5*time.Second, client.Timeout())
}

func TestNewClient_WithHTTPClientKeepsTimeoutAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stocksearch-test", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"meta":{},"price":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL,
		WithTimeout(7*time.Second),
		WithUserAgent("stocksearch-test"),
		WithHTTPClient(&http.Client{}),
	)
	assert.Equal(t, 7*time.Second, client.Timeout())

	_, err := client.GetStockData(context.Background(), "AAPL")
	require.NoError(t, err)
}

func TestNewClient_WithHTTPClientLeavesCallerClientUntouched(t *testing.T) {
	hc := &http.Client{Timeout: 2 * time.Second}

	client := NewClient("http://localhost:3000",
		WithHTTPClient(hc),
		WithTimeout(9*time.Second),
	)

	assert.Equal(t, 9*time.Second, client.Timeout())
	assert.Equal(t, 2*time.Second, hc.Timeout)
}
