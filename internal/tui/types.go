package tui

import (
	"github.com/jonandersen/stocksearch/internal/widget"
	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

// Type aliases so TUI code can use short names for API and widget models.

// API types
type Snapshot = stockapi.Snapshot

// Widget types
type (
	Display = widget.Display
	Fields  = widget.Fields
)
