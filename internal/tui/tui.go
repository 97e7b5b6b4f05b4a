package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonandersen/stocksearch/internal/widget"
	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	width  int
	height int
	ready  bool

	service StockDataService
	logger  *slog.Logger

	// All widget state lives in the controller; the text input only
	// handles editing and is copied into it on every change.
	widget *widget.Controller
	input  textinput.Model

	// cancel aborts the in-flight request's context.
	cancel context.CancelFunc
}

// New creates a new TUI model. A nil logger discards log output.
func New(svc StockDataService, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Enter stock ticker symbol (e.g., AAPL)"
	ti.CharLimit = 16
	ti.Width = 30
	ti.Focus()

	return Model{
		service: svc,
		logger:  logger,
		widget:  widget.NewController(),
		input:   ti,
	}
}

// Controller exposes the widget state, mainly for tests.
func (m Model) Controller() *widget.Controller {
	return m.widget
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case StockDataMsg:
		m.handleStockData(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelFetch()
		return m, tea.Quit
	}

	// The alert blocks everything until it is dismissed
	if m.widget.Alert() != "" {
		m.widget.DismissAlert()
		return m, nil
	}

	showing := m.widget.State().Kind == widget.StateShowing

	switch msg.String() {
	case "enter":
		return m.submit()

	case "esc":
		if m.widget.Cancel() {
			m.cancelFetch()
			m.logger.Info("search cancelled", "seq", m.widget.Seq())
		}
		return m, nil

	case "ctrl+l":
		m.widget.Clear()
		m.input.Reset()
		return m, nil

	case "tab":
		if showing {
			m.widget.NextTab()
		}
		return m, nil

	case "shift+tab":
		if showing {
			m.widget.PrevTab()
		}
		return m, nil

	case "f1":
		if showing {
			m.widget.SwitchTab(widget.TabCompanyOutlook)
		}
		return m, nil

	case "f2":
		if showing {
			m.widget.SwitchTab(widget.TabStockSummary)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.widget.SetInput(m.input.Value())
	return m, cmd
}

// submit handles the search trigger.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.widget.SetInput(m.input.Value())
	req, ok := m.widget.Submit()
	if !ok {
		return m, nil
	}

	m.cancelFetch()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.logger.Info("search submitted", "ticker", req.Ticker, "seq", req.Seq)
	return m, FetchStockData(ctx, m.service, req)
}

func (m *Model) handleStockData(msg StockDataMsg) {
	applied := m.widget.Complete(widget.Result{
		Seq:      msg.Seq,
		Snapshot: msg.Snapshot,
		Err:      msg.Err,
	})
	if !applied {
		m.logger.Debug("stale response dropped", "ticker", msg.Ticker, "seq", msg.Seq, "latest", m.widget.Seq())
		return
	}

	m.cancelFetch()
	if msg.Err != nil {
		// An unknown symbol is a user mistake, not a backend fault
		if apiErr, ok := stockapi.AsAPIError(msg.Err); ok && apiErr.IsNotFound() {
			m.logger.Info("symbol not found", "ticker", msg.Ticker, "seq", msg.Seq, "request_id", apiErr.RequestID)
			return
		}
		m.logger.Warn("search failed", "ticker", msg.Ticker, "seq", msg.Seq, "elapsed", msg.Elapsed, "error", msg.Err)
		return
	}
	m.logger.Info("search completed", "ticker", msg.Ticker, "seq", msg.Seq, "elapsed", msg.Elapsed)
}

func (m *Model) cancelFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	d := widget.Project(m.widget)

	if d.Alert != "" {
		return m.renderAlert(d.Alert)
	}

	header := m.renderHeader()
	footer := m.renderFooter(d)
	content := ContentStyle.Render(m.renderContent(d))

	// Calculate content height
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight

	// Pad content to fill available space
	content = fitLines(content, contentHeight)

	return header + "\n" + content + "\n" + footer
}

// renderHeader renders the header bar.
func (m Model) renderHeader() string {
	title := HeaderStyle.Render("stocksearch")
	return lipgloss.NewStyle().
		Background(ColorBackground).
		Width(m.width).
		Render(padRight(title, m.width))
}

// renderContent renders the search form followed by the error region or the
// result panel.
func (m Model) renderContent(d Display) string {
	var b strings.Builder

	b.WriteString(SummaryStyle.Render("Stock Search"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Enter Stock Ticker Symbol*"))
	b.WriteString("\n")

	button := ButtonStyle.Render(d.Trigger.Label)
	if d.Trigger.Disabled {
		button = ButtonDisabledStyle.Render(d.Trigger.Label)
	}
	form := lipgloss.JoinHorizontal(lipgloss.Center,
		InputStyle.Render(m.input.View()),
		"  ",
		button,
		"  ",
		ClearButtonStyle.Render("Clear"),
	)
	b.WriteString(form)
	b.WriteString("\n\n")

	switch {
	case d.ErrorVisible:
		b.WriteString(ErrorStyle.Render(d.ErrorMessage))
	case d.ResultVisible:
		b.WriteString(m.renderResult(d))
	}

	return b.String()
}

// renderAlert renders the blocking notification over the whole screen.
func (m Model) renderAlert(text string) string {
	box := AlertStyle.Render(
		WarningStyle.Render(text) + "\n\n" + LabelStyle.Render("Press any key to continue"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderFooter renders the footer bar with key hints.
func (m Model) renderFooter(d Display) string {
	keys := []struct {
		key  string
		desc string
	}{
		{"enter", "search"},
		{"ctrl+l", "clear"},
	}

	if d.Trigger.Disabled {
		keys = append(keys, struct{ key, desc string }{"esc", "cancel"})
	}
	if d.ResultVisible {
		keys = append(keys, struct{ key, desc string }{"tab", "switch tab"})
		keys = append(keys, struct{ key, desc string }{"f1/f2", "outlook/summary"})
	}

	keys = append(keys, struct{ key, desc string }{"ctrl+c", "quit"})

	var parts []string
	for _, k := range keys {
		parts = append(parts, KeyStyle.Render(k.key)+" "+DescStyle.Render(k.desc))
	}

	return lipgloss.NewStyle().
		Background(ColorBackground).
		Width(m.width).
		Render(padRight(strings.Join(parts, "  •  "), m.width))
}
