package viz

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Curve  lipgloss.Style
	Marker lipgloss.Style
	Label  lipgloss.Style
	Axis   lipgloss.Style
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles builds the styles for t. A plain style set renders text unchanged.
func NewStyles(t Theme, plain bool) Styles {
	if plain {
		s := lipgloss.NewStyle()
		return Styles{s, s, s, s, s, s, s, s}
	}
	return Styles{
		Curve:  lipgloss.NewStyle().Foreground(t.Curve),
		Marker: lipgloss.NewStyle().Foreground(t.Marker).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(t.Label),
		Axis:   lipgloss.NewStyle().Foreground(t.Axis),
		Title:  lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Accent: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

var (
	// Panel wraps the chart in the viewer
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	// Key hint style
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(10)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))
)
