package stockapi

import "github.com/shopspring/decimal"

// Snapshot is the combined company metadata and current price returned for
// one ticker.
type Snapshot struct {
	Meta  Meta  `json:"meta"`
	Price Price `json:"price"`
}

// Meta holds company information.
type Meta struct {
	Name         string `json:"name"`
	Ticker       string `json:"ticker"`
	ExchangeCode string `json:"exchangeCode"`
	StartDate    string `json:"startDate"`
	Description  string `json:"description"`
}

// Price holds the latest trading figures. Every figure is optional; an absent
// or null value leaves the field invalid (or nil for pointers). Volume is a
// decimal because some backends encode whole numbers as floats (1234567.0).
type Price struct {
	Ticker    string              `json:"ticker"`
	Timestamp *string             `json:"timestamp,omitempty"`
	PrevClose decimal.NullDecimal `json:"prevClose"`
	Open      decimal.NullDecimal `json:"open"`
	High      decimal.NullDecimal `json:"high"`
	Low       decimal.NullDecimal `json:"low"`
	Last      decimal.NullDecimal `json:"last"`
	Volume    decimal.NullDecimal `json:"volume"`
}
