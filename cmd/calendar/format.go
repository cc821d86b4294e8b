package main

import (
	"strings"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleBlue   = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
	styleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
)

func statusLabel(s calendar.Status) string {
	switch s {
	case calendar.StatusCompleted:
		return styleGreen.Render("● " + string(s))
	case calendar.StatusInProgress:
		return styleBlue.Render("● " + string(s))
	case calendar.StatusAvailable:
		return styleYellow.Render("● " + string(s))
	default:
		return styleDim.Render("● " + string(s))
	}
}

// renderTable pads columns by visible width so styled cells line up.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	const colGap = 2
	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", max(pad, 0)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return styleHeader.Render(s) })
	sep := make([]string, cols)
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
