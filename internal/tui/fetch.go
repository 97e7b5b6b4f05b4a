package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonandersen/stocksearch/internal/widget"
)

// StockDataService fetches the snapshot for one ticker.
type StockDataService interface {
	GetStockData(ctx context.Context, ticker string) (*Snapshot, error)
}

// FetchStockData returns a command that performs req against svc and
// reports the outcome as a StockDataMsg. Cancelling ctx abandons the request.
func FetchStockData(ctx context.Context, svc StockDataService, req widget.Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		snap, err := svc.GetStockData(ctx, req.Ticker)
		return StockDataMsg{
			Seq:      req.Seq,
			Ticker:   req.Ticker,
			Snapshot: snap,
			Err:      err,
			Elapsed:  time.Since(start),
		}
	}
}
