package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
)

// WaterfallStep is one bar of a waterfall breakdown
type WaterfallStep struct {
	Label    string
	Display  string
	Value    float64
	Negative bool
}

// Waterfall renders horizontal bars scaled to the largest step
type Waterfall struct {
	Title string
	Steps []WaterfallStep
	Width int
}

// NewWaterfall creates a waterfall chart
func NewWaterfall(title string, steps []WaterfallStep) *Waterfall {
	return &Waterfall{Title: title, Steps: steps, Width: 30}
}

// WithWidth sets the maximum bar width
func (w *Waterfall) WithWidth(width int) *Waterfall {
	w.Width = width
	return w
}

// Render returns one line per step
func (w *Waterfall) Render() string {
	var b strings.Builder
	if w.Title != "" {
		b.WriteString(tuistyles.SectionTitleStyle.Render(w.Title))
		b.WriteString("\n")
	}

	maxVal := 0.0
	for _, s := range w.Steps {
		maxVal = math.Max(maxVal, math.Abs(s.Value))
	}

	label := tuistyles.ParameterLabelStyle.Width(18)
	value := tuistyles.MetricValueStyle.Width(11).Align(lipgloss.Right)
	for i, s := range w.Steps {
		cells := 0
		if maxVal > 0 {
			cells = int(math.Round(math.Abs(s.Value) / maxVal * float64(w.Width)))
		}
		if cells == 0 && s.Value != 0 {
			cells = 1
		}

		color := tuistyles.ColorPrimary
		switch {
		case s.Negative:
			color = tuistyles.ColorDanger
		case i == len(w.Steps)-1:
			color = tuistyles.ColorSuccess
		}

		display := s.Display
		if s.Negative {
			display = "-" + display
		}
		b.WriteString(label.Render(s.Label))
		b.WriteString(value.Render(display))
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▇", cells)))
		if i < len(w.Steps)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
