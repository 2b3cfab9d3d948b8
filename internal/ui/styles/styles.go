// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Cell text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Footers, notes

	// Semantic color names - Table
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	TableHeaderColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Table title line
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// Table cells
	HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(TableHeaderColor)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(TextPrimaryColor)
	BorderStyle = lipgloss.NewStyle().Foreground(BorderDefaultColor)

	// Severity cells in check reports
	ErrorCellStyle   = CellStyle.Foreground(StatusErrorColor).Bold(true)
	WarningCellStyle = CellStyle.Foreground(StatusWarningColor)
	SuccessStyle     = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	// Footers and notes
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
)
