// Package widget holds the search widget's state machine and the pure
// projection from that state to what the screen shows. Nothing in this
// package performs I/O: the controller hands out Requests and is fed Results.
package widget

import "github.com/jonandersen/stocksearch/pkg/stockapi"

// StateKind identifies which of the mutually exclusive UI states is current.
type StateKind int

const (
	StateIdle StateKind = iota
	StateLoading
	StateShowing
	StateShowingError
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateShowing:
		return "showing"
	case StateShowingError:
		return "error"
	}
	return "unknown"
}

// UIState is the controller's current state. Snapshot is set only for
// StateShowing and Message only for StateShowingError.
type UIState struct {
	Kind     StateKind
	Snapshot *stockapi.Snapshot
	Message  string
}

// Tab identifies one of the result panels.
type Tab string

const (
	TabCompanyOutlook Tab = "company-outlook"
	TabStockSummary   Tab = "stock-summary"
)

// Tabs returns every tab in display order. The first one is the default.
func Tabs() []Tab {
	return []Tab{TabCompanyOutlook, TabStockSummary}
}

// Title returns the human readable tab name.
func (t Tab) Title() string {
	switch t {
	case TabCompanyOutlook:
		return "Company Outlook"
	case TabStockSummary:
		return "Stock Summary"
	}
	return string(t)
}

func (t Tab) valid() bool {
	for _, tab := range Tabs() {
		if tab == t {
			return true
		}
	}
	return false
}

// Trigger is the search button.
type Trigger struct {
	Label    string
	Disabled bool
}

// Request asks the caller to fetch data for Ticker. Seq must be echoed back
// in the matching Result.
type Request struct {
	Seq    uint64
	Ticker string
}

// Result is the outcome of a Request.
type Result struct {
	Seq      uint64
	Snapshot *stockapi.Snapshot
	Err      error
}
