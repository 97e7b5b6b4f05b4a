// Package stockapi provides a Go client for the stock lookup backend.
//
// The backend exposes a single query endpoint that combines company metadata
// and the latest price for one ticker. This package can be imported by other
// projects that want the same data without the terminal UI.
package stockapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// StockDataPath is the backend endpoint queried for a ticker snapshot.
	StockDataPath = "/get_stock_data"

	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// DefaultTimeout bounds a single request when no option overrides it.
	DefaultTimeout = 30 * time.Second
)

// Client handles HTTP requests to the stock data backend.
type Client struct {
	BaseURL string

	rc     *resty.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(d)
	}
}

// WithHTTPClient replaces the underlying transport client. The client is
// copied, so hc itself is never modified; its Transport is shared.
// Any timeout or header already applied is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		timeout := c.rc.GetClient().Timeout
		headers := c.rc.Header.Clone()
		copied := *hc
		c.rc = newResty(c.BaseURL, &copied, c.logger)
		c.rc.SetTimeout(timeout)
		for k, v := range headers {
			c.rc.Header[k] = v
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.rc.SetHeader("User-Agent", ua)
	}
}

// WithLogger routes the transport's own diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.rc.SetLogger(restyLogger{logger})
	}
}

// NewClient creates a new API client for the given backend base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &Client{
		BaseURL: baseURL,
		rc:      newResty(baseURL, &http.Client{}, logger),
		logger:  logger,
	}
	c.rc.SetTimeout(DefaultTimeout)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the per-request timeout currently in effect.
func (c *Client) Timeout() time.Duration {
	return c.rc.GetClient().Timeout
}

func newResty(baseURL string, hc *http.Client, logger *slog.Logger) *resty.Client {
	rc := resty.NewWithClient(hc)
	rc.SetBaseURL(baseURL)
	// resty writes to stderr by default, which would corrupt the TUI.
	rc.SetLogger(restyLogger{logger})
	// Every failure is terminal for the request; the user searches again.
	rc.SetRetryCount(0)
	rc.SetHeader("Accept", "application/json")
	return rc
}

// restyLogger adapts slog to resty's printf-style logger.
type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
