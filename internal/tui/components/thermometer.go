package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
)

// Thermometer renders a 0-100 score as a filled bar colored by zone
type Thermometer struct {
	Label string
	Score float64
	Zone  string
	Width int
}

// NewThermometer creates a thermometer for a score and its zone name
func NewThermometer(label string, score float64, zone string) *Thermometer {
	return &Thermometer{Label: label, Score: score, Zone: zone, Width: 40}
}

// WithWidth sets the bar width
func (t *Thermometer) WithWidth(width int) *Thermometer {
	t.Width = width
	return t
}

// Filled returns the number of filled cells for the current score
func (t *Thermometer) Filled() int {
	score := math.Max(0, math.Min(100, t.Score))
	return int(math.Round(float64(t.Width) * score / 100))
}

// Render returns the label line, the bar and the scale legend
func (t *Thermometer) Render() string {
	filled := t.Filled()
	color := tuistyles.ExposureColor(t.Zone)

	var b strings.Builder
	if t.Label != "" {
		b.WriteString(tuistyles.SectionTitleStyle.Render(t.Label))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).
			Render(fmt.Sprintf("%.0f/100 (%s)", t.Score, t.Zone)))
		b.WriteString("\n")
	}

	b.WriteString("[")
	b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	b.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("░", t.Width-filled)))
	b.WriteString("]\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(t.scale()))
	return b.String()
}

// scale spreads the three taxation tiers across the bar width
func (t *Thermometer) scale() string {
	left, mid, right := "Tax Free", "50% Taxable", "85% Taxable"
	gap := t.Width + 2 - len(left) - len(mid) - len(right)
	if gap < 2 {
		return left + " " + mid + " " + right
	}
	return left + strings.Repeat(" ", gap/2) + mid + strings.Repeat(" ", gap-gap/2) + right
}
