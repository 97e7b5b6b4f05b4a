package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonandersen/stocksearch/internal/widget"
)

// renderResult renders the tab bar and the active tab's content region.
func (m Model) renderResult(d Display) string {
	var tabs []string
	active := widget.TabCompanyOutlook
	for _, tv := range d.Tabs {
		style := TabInactiveStyle
		if tv.Active {
			style = TabActiveStyle
			active = tv.ID
		}
		tabs = append(tabs, style.Render(tv.Title))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch active {
	case widget.TabCompanyOutlook:
		body = m.renderOutlook(d.Fields)
	case widget.TabStockSummary:
		body = renderSummary(d.Fields)
	}

	return tabBar + "\n" + PanelStyle.Render(body)
}

// renderOutlook renders the Company Outlook tab.
func (m Model) renderOutlook(f Fields) string {
	rows := []labelValue{
		{"Company Name", f.CompanyName},
		{"Stock Ticker Symbol", f.CompanyTicker},
		{"Stock Exchange Code", f.ExchangeCode},
		{"Company Start Date", f.StartDate},
	}

	var b strings.Builder
	b.WriteString(renderRows(rows))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Description"))
	b.WriteString("\n")

	// Leave room for content padding and the panel border
	wrap := m.width - 12
	if wrap < 20 {
		wrap = 20
	}
	b.WriteString(lipgloss.NewStyle().Width(wrap).Render(f.Description))
	return b.String()
}

// renderSummary renders the Stock Summary tab.
func renderSummary(f Fields) string {
	rows := []labelValue{
		{"Stock Ticker Symbol", f.StockTicker},
		{"Trading Day", f.TradingDay},
		{"Previous Closing Price", f.PrevClose},
		{"Opening Price", f.OpeningPrice},
		{"High Price", f.HighPrice},
		{"Low Price", f.LowPrice},
		{"Last Price", f.LastPrice},
		{"Change", withArrow(f.Change, f.ChangeDirection)},
		{"Change Percent", withArrow(f.ChangePercent, f.ChangeDirection)},
		{"Number of Shares Traded", f.Volume},
	}
	return renderRows(rows)
}

// withArrow appends the direction indicator to a change figure.
func withArrow(value string, dir widget.Direction) string {
	switch dir {
	case widget.DirectionUp:
		return value + " " + GreenStyle.Render(dir.Arrow())
	case widget.DirectionDown:
		return value + " " + RedStyle.Render(dir.Arrow())
	}
	return value
}
