package ui

import "github.com/charmbracelet/lipgloss"

// MinLeftWidth is the minimum character width for the left pane.
const MinLeftWidth = 28

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}

	titleText = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	labelText = lipgloss.NewStyle().Bold(true).Width(7)
)

// statusColors maps each status kind to its foreground color.
var statusColors = map[StatusKind]lipgloss.AdaptiveColor{
	StatusInfo:    {Light: "4", Dark: "12"},
	StatusSuccess: {Light: "2", Dark: "10"},
	StatusWarning: {Light: "3", Dark: "11"},
	StatusError:   {Light: "1", Dark: "9"},
}

// StatusStyle returns the style for a status line of the given kind.
func StatusStyle(kind StatusKind) lipgloss.Style {
	c, ok := statusColors[kind]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor)
}

// PaneWidths calculates the left and right pane widths from a total width.
// Left pane gets half (minimum MinLeftWidth), right pane gets the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 2
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
