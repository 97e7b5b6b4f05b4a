package widget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

const (
	// NotAvailable marks a field the backend did not supply.
	NotAvailable = "N/A"

	// DescriptionLimit approximates five lines of description text.
	DescriptionLimit = 400

	ellipsis = "..."
)

var hundred = decimal.NewFromInt(100)

// Direction is the price movement indicator shown next to the change figures.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Arrow returns the indicator glyph.
func (d Direction) Arrow() string {
	switch d {
	case DirectionUp:
		return "▲"
	case DirectionDown:
		return "▼"
	}
	return ""
}

// MarshalText renders the direction as "up", "down" or "".
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirectionUp:
		return []byte("up"), nil
	case DirectionDown:
		return []byte("down"), nil
	}
	return []byte(""), nil
}

// Fields is the text of every named display region of the result panel.
type Fields struct {
	// Company Outlook
	CompanyName   string `json:"company-name"`
	CompanyTicker string `json:"company-ticker"`
	ExchangeCode  string `json:"exchange-code"`
	StartDate     string `json:"start-date"`
	Description   string `json:"description"`

	// Stock Summary
	StockTicker     string    `json:"stock-ticker"`
	TradingDay      string    `json:"trading-day"`
	PrevClose       string    `json:"prev-close"`
	OpeningPrice    string    `json:"opening-price"`
	HighPrice       string    `json:"high-price"`
	LowPrice        string    `json:"low-price"`
	LastPrice       string    `json:"last-price"`
	Change          string    `json:"change"`
	ChangePercent   string    `json:"change-percent"`
	ChangeDirection Direction `json:"change-direction"`
	Volume          string    `json:"volume"`
}

// TabView is one tab control and its content region.
type TabView struct {
	ID     Tab    `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// Display is everything the rendering surface needs to draw the widget.
type Display struct {
	Input         string    `json:"input"`
	Trigger       Trigger   `json:"trigger"`
	Alert         string    `json:"alert,omitempty"`
	ResultVisible bool      `json:"resultVisible"`
	ErrorVisible  bool      `json:"errorVisible"`
	ErrorMessage  string    `json:"errorMessage,omitempty"`
	Tabs          []TabView `json:"tabs"`
	Fields        Fields    `json:"fields"`
}

// Project maps controller state to display. It has no side effects.
func Project(c *Controller) Display {
	d := Display{
		Input:   c.input,
		Trigger: c.trigger,
		Alert:   c.alert,
	}

	for _, tab := range Tabs() {
		d.Tabs = append(d.Tabs, TabView{
			ID:     tab,
			Title:  tab.Title(),
			Active: tab == c.activeTab,
		})
	}

	switch c.state.Kind {
	case StateShowing:
		d.ResultVisible = true
		d.Fields = RenderFields(c.state.Snapshot)
	case StateShowingError:
		d.ErrorVisible = true
		d.ErrorMessage = c.state.Message
	}

	return d
}

// RenderFields formats a snapshot into display text.
func RenderFields(s *stockapi.Snapshot) Fields {
	if s == nil {
		return Fields{}
	}

	f := Fields{
		CompanyName:   s.Meta.Name,
		CompanyTicker: s.Meta.Ticker,
		ExchangeCode:  s.Meta.ExchangeCode,
		StartDate:     s.Meta.StartDate,
		Description:   Truncate(s.Meta.Description, DescriptionLimit),

		StockTicker:  s.Price.Ticker,
		TradingDay:   tradingDay(s.Price.Timestamp),
		PrevClose:    fixed2(s.Price.PrevClose),
		OpeningPrice: fixed2(s.Price.Open),
		HighPrice:    fixed2(s.Price.High),
		LowPrice:     fixed2(s.Price.Low),
		LastPrice:    fixed2(s.Price.Last),

		Change:        NotAvailable,
		ChangePercent: NotAvailable,
		Volume:        NotAvailable,
	}

	if s.Price.Last.Valid && s.Price.PrevClose.Valid {
		last, prev := s.Price.Last.Decimal, s.Price.PrevClose.Decimal
		change := last.Sub(prev)
		f.Change = change.StringFixed(2)
		if !prev.IsZero() {
			f.ChangePercent = change.Div(prev).Mul(hundred).StringFixed(2) + "%"
		}
		if change.Sign() >= 0 {
			f.ChangeDirection = DirectionUp
		} else {
			f.ChangeDirection = DirectionDown
		}
	}

	if s.Price.Volume.Valid {
		f.Volume = s.Price.Volume.Decimal.String()
	}

	return f
}

// Truncate shortens text to at most limit runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + ellipsis
}

func tradingDay(ts *string) string {
	if ts == nil || *ts == "" {
		return NotAvailable
	}
	date, _, _ := strings.Cut(*ts, "T")
	return date
}

func fixed2(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotAvailable
	}
	return v.Decimal.StringFixed(2)
}
