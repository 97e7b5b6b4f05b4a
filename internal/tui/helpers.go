package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// labelValue is one row of a result tab.
type labelValue struct {
	label string
	value string
}

// renderRows renders label/value rows with the labels right-aligned.
func renderRows(rows []labelValue) string {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.label); w > width {
			width = w
		}
	}

	labelStyle := LabelStyle.Width(width).Align(lipgloss.Right)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r.label)+"  "+ValueStyle.Render(r.value))
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	padding := width - lipgloss.Width(s)
	if padding > 0 {
		s += strings.Repeat(" ", padding)
	}
	return s
}

// fitLines pads or truncates s to exactly height lines.
func fitLines(s string, height int) string {
	if height < 0 {
		height = 0
	}
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
