package styles

import (
	"github.com/allbin/ttlpulse/internal/tui/colors"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Device identifiers are highlighted wherever they appear
	DeviceStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow)

	// Flag names shown in guidance messages are de-emphasized
	FlagStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0).
			Faint(true)

	BaudStyle = lipgloss.NewStyle().
			Foreground(colors.Green)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)
)

// TableStyles returns the styles for the static port table. No row is
// highlighted since the table is never focused.
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colors.Surface1).
		BorderBottom(true).
		Bold(true).
		Foreground(colors.Text)
	s.Cell = s.Cell.
		Foreground(colors.Subtext0)
	s.Selected = lipgloss.NewStyle()
	return s
}
