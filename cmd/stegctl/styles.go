package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(successColor)
	warnStyle = lipgloss.NewStyle().Foreground(warningColor)
	dimStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// renderTable draws rows under headers, plain when --no-color is set.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...)
	if noColor {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
			String()
	}
	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}

// paint applies s unless --no-color is set.
func paint(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
