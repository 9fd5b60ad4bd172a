// Package tuistyles holds the shared palette and lipgloss styles for the TUI.
package tuistyles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("#2563EB")
	ColorSecondary = lipgloss.Color("#7C3AED")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#FACC15")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#3B82F6")

	ColorForeground = lipgloss.Color("#E2E8F0")
	ColorMuted      = lipgloss.Color("#94A3B8")
	ColorBorder     = lipgloss.Color("#334155")

	ColorChartLine = ColorPrimary
	ColorChartFill = lipgloss.Color("#1E3A8A")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActivePanelStyle = PanelStyle.BorderForeground(ColorPrimary)

	AdvisoryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary).
				Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	ParameterValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorInfo)
	TipStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	BulletStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
)

// MetricTrendStyle colors a trend green when favorable
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// ExposureColor maps an exposure zone name to its thermometer color
func ExposureColor(zone string) lipgloss.Color {
	switch zone {
	case "High":
		return ColorDanger
	case "Moderate":
		return ColorWarning
	default:
		return ColorSuccess
	}
}
