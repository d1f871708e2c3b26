package charts

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, same palette the rest of the UI uses.
var (
	chartColorGreen    = lipgloss.Color("#a6e3a1")
	chartColorRed      = lipgloss.Color("#f38ba8")
	chartColorBlue     = lipgloss.Color("#89b4fa")
	chartColorPeach    = lipgloss.Color("#fab387")
	chartColorYellow   = lipgloss.Color("#f9e2af")
	chartColorMauve    = lipgloss.Color("#cba6f7")
	chartColorTeal     = lipgloss.Color("#94e2d5")
	chartColorOverlay  = lipgloss.Color("#7f849c")
	chartColorSurface1 = lipgloss.Color("#45475a")
	chartColorSurface2 = lipgloss.Color("#585b70")
)

var axisStyle = lipgloss.NewStyle().Foreground(chartColorSurface2)

var labelStyle = lipgloss.NewStyle().Foreground(chartColorOverlay)

var countryColors = map[string]lipgloss.Color{
	"United States": chartColorBlue,
	"China":         chartColorRed,
	"India":         chartColorPeach,
	"Germany":       chartColorYellow,
	"Brazil":        chartColorGreen,
}

var continentColors = map[string]lipgloss.Color{
	"Africa":   chartColorPeach,
	"Americas": chartColorGreen,
	"Asia":     chartColorRed,
	"Europe":   chartColorBlue,
	"Oceania":  chartColorMauve,
}

func countryColor(name string) lipgloss.Color {
	if c, ok := countryColors[name]; ok {
		return c
	}
	return chartColorTeal
}

func continentColor(name string) lipgloss.Color {
	if c, ok := continentColors[name]; ok {
		return c
	}
	return chartColorTeal
}
