package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chart color scheme
type Theme struct {
	Name   string
	Curve  lipgloss.Color
	Marker lipgloss.Color
	Label  lipgloss.Color
	Axis   lipgloss.Color
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Curve:  lipgloss.Color("#1f77b4"), // matplotlib blue
		Marker: lipgloss.Color("#ff0000"),
		Label:  lipgloss.Color("#ffffff"),
		Axis:   lipgloss.Color("#888888"),
		Title:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffcc00"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Curve:  lipgloss.Color("#00ffff"),
		Marker: lipgloss.Color("#ff00ff"),
		Label:  lipgloss.Color("#ffff00"),
		Axis:   lipgloss.Color("#666666"),
		Title:  lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Curve:  lipgloss.Color("#00ff00"), // Green phosphor
		Marker: lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#88ff88"),
		Axis:   lipgloss.Color("#005500"),
		Title:  lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Curve:  lipgloss.Color("#00a8cc"),
		Marker: lipgloss.Color("#ffd700"),
		Label:  lipgloss.Color("#e0f0ff"),
		Axis:   lipgloss.Color("#4488aa"),
		Title:  lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Curve:  lipgloss.Color("#feca57"),
		Marker: lipgloss.Color("#ff6b6b"), // Coral
		Label:  lipgloss.Color("#fff5f5"),
		Axis:   lipgloss.Color("#8b6b8c"),
		Title:  lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ffc048"),
	}

	// All available themes, default first
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// HasTheme reports whether name is a known theme
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after the named one, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
