package widget

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles for the widget pieces.
type Styles struct {
	Box      lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Matched  lipgloss.Style
	Picked   lipgloss.Style
}

// DefaultStyles returns the standard look: a dim border around the
// suggestion box, a highlighted row for the focused suggestion, and a
// bold matched prefix.
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Row: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Matched: lipgloss.NewStyle().
			Bold(true),
		Picked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
	}
}
