package tui

import "time"

// Message types for async operations

// StockDataMsg is sent when a stock data request finishes, successfully or
// not. Seq identifies the request it answers.
type StockDataMsg struct {
	Seq      uint64
	Ticker   string
	Snapshot *Snapshot
	Err      error
	Elapsed  time.Duration
}
