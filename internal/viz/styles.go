package viz

import "github.com/charmbracelet/lipgloss"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	// HeaderStyle decorates summary table headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	longRegime  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	shortRegime = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// RegimeLabel renders the tinted regime column text for summary
// tables: "long" for paths at or above the threshold, "short" below.
func RegimeLabel(pathLength, threshold float64) string {
	if pathLength >= threshold {
		return longRegime.Render("long")
	}
	return shortRegime.Render("short")
}
