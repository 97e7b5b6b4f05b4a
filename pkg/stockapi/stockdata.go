package stockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GetStockData retrieves the snapshot for a single ticker.
// Exactly one request is issued; failures are never retried.
func (c *Client) GetStockData(ctx context.Context, ticker string) (*Snapshot, error) {
	if strings.TrimSpace(ticker) == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	requestID := uuid.NewString()
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetQueryParam("ticker", ticker).
		Get(StockDataPath)
	if err != nil {
		c.logger.Debug("stock data request failed", "ticker", ticker, "request_id", requestID, "error", err)
		return nil, &TransportError{RequestID: requestID, Err: err}
	}
	c.logger.Debug("stock data response", "ticker", ticker, "request_id", requestID,
		"status", resp.StatusCode(), "elapsed", resp.Time())

	if err := checkResponse(resp, requestID); err != nil {
		return nil, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &snapshot, nil
}
