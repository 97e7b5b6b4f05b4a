package widget

import (
	"context"
	"errors"
	"strings"

	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

// User facing text.
const (
	LabelSearch  = "Search"
	LabelLoading = "Loading..."

	AlertEmptyTicker = "Please fill out this field"

	MessageUnknownSymbol = "Error: No record has been found, please enter a valid symbol."
	MessageNetworkError  = "Network error. Please try again later."
)

// Controller owns the search widget state. It is not safe for concurrent
// use; the rendering loop is its only writer.
type Controller struct {
	input     string
	state     UIState
	activeTab Tab
	trigger   Trigger
	alert     string

	// seq is the number of the most recently issued request.
	seq      uint64
	inFlight bool
}

// NewController creates a controller in the idle state.
func NewController() *Controller {
	return &Controller{
		state:     UIState{Kind: StateIdle},
		activeTab: TabCompanyOutlook,
		trigger:   Trigger{Label: LabelSearch},
	}
}

// Input returns the ticker field's text as typed.
func (c *Controller) Input() string { return c.input }

// State returns the current UI state.
func (c *Controller) State() UIState { return c.state }

// ActiveTab returns the selected result tab.
func (c *Controller) ActiveTab() Tab { return c.activeTab }

// Trigger returns the search button state.
func (c *Controller) Trigger() Trigger { return c.trigger }

// Alert returns the pending blocking notification, or "".
func (c *Controller) Alert() string { return c.alert }

// InFlight reports whether a request is outstanding.
func (c *Controller) InFlight() bool { return c.inFlight }

// Seq returns the sequence number of the most recent request.
func (c *Controller) Seq() uint64 { return c.seq }

// SetInput replaces the ticker field's text.
func (c *Controller) SetInput(text string) {
	c.input = text
}

// Submit handles a search submission. It returns the request to perform, or
// false when nothing should be fetched: either the trimmed ticker is empty
// (an alert is raised) or the trigger is disabled.
func (c *Controller) Submit() (Request, bool) {
	if c.trigger.Disabled {
		return Request{}, false
	}

	ticker := strings.TrimSpace(c.input)
	if ticker == "" {
		c.alert = AlertEmptyTicker
		return Request{}, false
	}

	c.trigger = Trigger{Label: LabelLoading, Disabled: true}
	c.state = UIState{Kind: StateLoading}
	c.seq++
	c.inFlight = true

	return Request{Seq: c.seq, Ticker: ticker}, true
}

// Complete applies the outcome of a request. Results for anything but the
// latest request are dropped and false is returned.
func (c *Controller) Complete(res Result) bool {
	if !c.inFlight || res.Seq != c.seq {
		return false
	}

	c.inFlight = false
	c.trigger = Trigger{Label: LabelSearch}

	switch {
	case res.Err != nil && errors.Is(res.Err, context.Canceled):
		c.state = UIState{Kind: StateIdle}
	case res.Err != nil:
		c.displayError(ErrorMessage(res.Err))
	case res.Snapshot == nil:
		c.displayError(MessageUnknownSymbol)
	default:
		c.render(res.Snapshot)
	}
	return true
}

// Cancel abandons the in-flight request. Its result, if it still arrives, is
// ignored. Returns false when nothing was in flight.
func (c *Controller) Cancel() bool {
	if !c.inFlight {
		return false
	}
	c.inFlight = false
	// Burn the sequence number so the abandoned result is stale.
	c.seq++
	c.trigger = Trigger{Label: LabelSearch}
	if c.state.Kind == StateLoading {
		c.state = UIState{Kind: StateIdle}
	}
	return true
}

// Clear empties the ticker field and hides both panels. An in-flight request
// is left running and its result is still shown when it arrives.
func (c *Controller) Clear() {
	c.input = ""
	c.state = UIState{Kind: StateIdle}
}

// SwitchTab makes tab the only active tab. Unknown tabs are ignored.
func (c *Controller) SwitchTab(tab Tab) {
	if !tab.valid() {
		return
	}
	c.activeTab = tab
}

// NextTab activates the tab after the current one, wrapping around.
func (c *Controller) NextTab() {
	c.stepTab(1)
}

// PrevTab activates the tab before the current one, wrapping around.
func (c *Controller) PrevTab() {
	c.stepTab(-1)
}

func (c *Controller) stepTab(delta int) {
	tabs := Tabs()
	for i, tab := range tabs {
		if tab == c.activeTab {
			c.activeTab = tabs[(i+delta+len(tabs))%len(tabs)]
			return
		}
	}
	c.activeTab = tabs[0]
}

// DismissAlert clears the blocking notification.
func (c *Controller) DismissAlert() {
	c.alert = ""
}

func (c *Controller) render(s *stockapi.Snapshot) {
	c.state = UIState{Kind: StateShowing, Snapshot: s}
	c.SwitchTab(TabCompanyOutlook)
}

func (c *Controller) displayError(msg string) {
	c.state = UIState{Kind: StateShowingError, Message: msg}
}

// ErrorMessage resolves the text shown for a failed request. A transport
// failure wins since no body exists; next is the backend's own error text;
// everything else gets the unrecognised symbol message.
func ErrorMessage(err error) string {
	if stockapi.IsTransport(err) {
		return MessageNetworkError
	}
	if apiErr, ok := stockapi.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return MessageUnknownSymbol
}
