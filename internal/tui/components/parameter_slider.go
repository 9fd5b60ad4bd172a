package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable whole-number input with a visual track
type ParameterSlider struct {
	Label     string
	Value     int
	Min       int
	Max       int
	Step      int
	Width     int
	IsFocused bool
	Formatter func(int) string
}

// NewParameterSlider creates a slider clamped to [min, max]
func NewParameterSlider(label string, value, min, max, step int) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 20,
	}
	p.SetValue(value)
	return p
}

// WithFormatter sets how the value is displayed
func (p *ParameterSlider) WithFormatter(f func(int) string) *ParameterSlider {
	p.Formatter = f
	return p
}

// WithWidth sets the track width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by one step, stopping at Max
func (p *ParameterSlider) Increment() bool {
	return p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by one step, stopping at Min
func (p *ParameterSlider) Decrement() bool {
	return p.SetValue(p.Value - p.Step)
}

// SetValue clamps and stores the value, reporting whether it changed
func (p *ParameterSlider) SetValue(value int) bool {
	if value < p.Min {
		value = p.Min
	}
	if value > p.Max {
		value = p.Max
	}
	changed := value != p.Value
	p.Value = value
	return changed
}

// Percentage returns the value's position within the range as 0..1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

// FormattedValue renders the value with the formatter, or as a bare integer
func (p *ParameterSlider) FormattedValue() string {
	if p.Formatter != nil {
		return p.Formatter(p.Value)
	}
	return fmt.Sprintf("%d", p.Value)
}

// Render returns a single slider line: label, value and track
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle.Width(22)
	valueStyle := tuistyles.ParameterValueStyle.Width(10)
	cursor := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = tuistyles.StatusKeyStyle.Render("▸ ")
	}

	return cursor + labelStyle.Render(p.Label) + valueStyle.Render(p.FormattedValue()) + " " + p.renderTrack()
}

func (p *ParameterSlider) renderTrack() string {
	if p.Width < 1 {
		return ""
	}
	thumb := int(math.Round(float64(p.Width-1) * p.Percentage()))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := p.Width - thumb - 1; rest > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}
