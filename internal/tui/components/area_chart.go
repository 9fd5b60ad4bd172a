package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
)

const yAxisWidth = 9

// AreaChart draws a single filled series, such as cumulative net by age
type AreaChart struct {
	Title  string
	Points []float64
	Labels []string // X-axis labels, one per point
	Width  int
	Height int
	Color  lipgloss.Color
}

// NewAreaChart creates an area chart with the default size
func NewAreaChart(title string, points []float64) *AreaChart {
	return &AreaChart{
		Title:  title,
		Points: points,
		Width:  60,
		Height: 10,
		Color:  tuistyles.ColorChartLine,
	}
}

// WithLabels sets the X-axis labels
func (c *AreaChart) WithLabels(labels []string) *AreaChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions, including the Y axis
func (c *AreaChart) WithSize(width, height int) *AreaChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *AreaChart) Render() string {
	var out strings.Builder
	if c.Title != "" {
		out.WriteString(tuistyles.SectionTitleStyle.Render(c.Title))
		out.WriteString("\n")
	}
	if len(c.Points) == 0 || c.Height < 2 {
		out.WriteString(tuistyles.InfoStyle.Render("No data to display"))
		return out.String()
	}

	plotWidth := c.Width - yAxisWidth - 3
	if plotWidth < 1 {
		plotWidth = 1
	}

	maxVal := 0.0
	for _, p := range c.Points {
		maxVal = math.Max(maxVal, p)
	}

	heights := c.columnHeights(plotWidth, maxVal)
	fill := lipgloss.NewStyle().Foreground(c.Color)
	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)

	for row := 0; row < c.Height; row++ {
		level := c.Height - row
		label := ""
		switch row {
		case 0:
			label = formatChartValue(maxVal)
		case c.Height - 1:
			label = formatChartValue(0)
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" │ ")

		var line strings.Builder
		for _, h := range heights {
			if h >= level {
				line.WriteRune('█')
			} else {
				line.WriteRune(' ')
			}
		}
		out.WriteString(fill.Render(line.String()))
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth+1))

	if len(c.Labels) > 0 {
		out.WriteString("\n")
		out.WriteString(c.renderXAxisLabels(plotWidth))
	}
	return out.String()
}

// columnHeights maps each plot column onto a point and scales it to the chart height
func (c *AreaChart) columnHeights(plotWidth int, maxVal float64) []int {
	heights := make([]int, plotWidth)
	if maxVal <= 0 {
		return heights
	}
	n := len(c.Points)
	for col := range heights {
		idx := 0
		if plotWidth > 1 {
			idx = int(math.Round(float64(col) / float64(plotWidth-1) * float64(n-1)))
		}
		v := math.Max(0, c.Points[idx])
		heights[col] = int(math.Round(v / maxVal * float64(c.Height)))
	}
	return heights
}

// renderXAxisLabels prints the first, middle and last labels under the plot
func (c *AreaChart) renderXAxisLabels(plotWidth int) string {
	first := c.Labels[0]
	last := c.Labels[len(c.Labels)-1]
	mid := c.Labels[len(c.Labels)/2]

	line := []rune(strings.Repeat(" ", plotWidth+1))
	place := func(pos int, s string) {
		for i, r := range []rune(s) {
			if pos+i >= 0 && pos+i < len(line) {
				line[pos+i] = r
			}
		}
	}
	place(0, first)
	if len(c.Labels) > 2 {
		place(plotWidth/2-len(mid)/2, mid)
	}
	if len(c.Labels) > 1 {
		place(plotWidth+1-len(last), last)
	}

	style := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + style.Render(string(line))
}

// formatChartValue abbreviates an axis value
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fk", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}
