package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ssgo/internal/output"
	"github.com/rgehrsitz/ssgo/internal/tui/components"
	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
)

// wideLayout is the terminal width at which inputs and results sit side by side
const wideLayout = 110

// View renders the dashboard
func (m *Model) View() string {
	header := tuistyles.TitleStyle.Render("SURVIVOR BENEFIT STRATEGY") + "  " +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d rules • FRA %d", m.policy.Year, m.policy.FullRetirementAge))

	left := m.renderInputs()
	right := m.renderResults()

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	sections := []string{header, body, m.renderTips(), m.renderAdvisory(), m.help.View(m.keys)}
	return tuistyles.AppStyle.Render(strings.Join(sections, "\n\n"))
}

func (m *Model) renderInputs() string {
	var b strings.Builder
	b.WriteString(tuistyles.SectionTitleStyle.Render("Inputs"))
	b.WriteString("\n")
	for _, s := range m.sliders {
		b.WriteString(s.Render())
		b.WriteString("\n")
	}

	label := tuistyles.ParameterLabelStyle.Width(22)
	cursor := "  "
	if m.focus == fieldFilingStatus {
		label = label.Foreground(tuistyles.ColorPrimary).Bold(true)
		cursor = tuistyles.StatusKeyStyle.Render("▸ ")
	}
	b.WriteString(cursor + label.Render("Filing Status") + tuistyles.ParameterValueStyle.Render(m.params.FilingStatus.String()))

	if m.result != nil {
		thermo := components.NewThermometer("Tax Exposure", m.result.TaxExposure.InexactFloat64(), string(m.result.ExposureZone())).
			WithWidth(52)
		b.WriteString("\n\n")
		b.WriteString(thermo.Render())
		b.WriteString("\n")
		b.WriteString(tuistyles.TipStyle.Render(output.ExposureSentence(m.result)))
	}

	return tuistyles.PanelStyle.Width(60).Render(b.String())
}

func (m *Model) renderResults() string {
	if m.err != nil {
		return tuistyles.PanelStyle.Width(60).Render(
			tuistyles.ErrorStyle.Render("Cannot project this scenario") + "\n" + m.err.Error())
	}

	r := m.result
	claimAge := m.params.TargetClaimingAge
	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly Net (Est.)", output.FormatDollars(r.MonthlyNetAt(claimAge))).
			WithDescription(fmt.Sprintf("at age %d", claimAge)).WithWidth(24),
		components.NewMetricCard("Lifetime Wealth", output.FormatDollars(r.TotalLifetimeValue)).
			WithDescription(fmt.Sprintf("through age %d", m.params.LifeExpectancy)).WithWidth(24),
	}
	withheld := components.NewMetricCard("Earnings Withheld", output.FormatDollars(r.EarningsPenaltyTotal)).WithWidth(24)
	if r.EarningsPenaltyTotal.IsPositive() {
		withheld.WithTrend(false, "earnings test")
	} else {
		withheld.WithDescription("none")
	}
	cards = append(cards, withheld)

	var main string
	if m.view == viewLedger {
		main = tuistyles.SectionTitleStyle.Render("Yearly Ledger") + "\n" + m.ledger.View()
	} else {
		points := make([]float64, len(r.YearlyData))
		labels := make([]string, len(r.YearlyData))
		for i, rec := range r.YearlyData {
			points[i] = rec.CumulativeNet.InexactFloat64()
			labels[i] = fmt.Sprintf("%d", rec.Age)
		}
		main = components.NewAreaChart("Ladder of Growth", points).WithLabels(labels).WithSize(70, 8).Render()
	}

	age, steps := output.WaterfallSteps(r)
	bars := make([]components.WaterfallStep, len(steps))
	for i, s := range steps {
		bars[i] = components.WaterfallStep{
			Label:    s.Label,
			Display:  s.Amount,
			Value:    s.Value.InexactFloat64(),
			Negative: s.Negative,
		}
	}
	waterfall := components.NewWaterfall(fmt.Sprintf("Monthly Breakdown (age %d)", age), bars).Render()

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 3),
		tuistyles.PanelStyle.Render(main),
		tuistyles.PanelStyle.Render(waterfall),
	)
}

func (m *Model) renderTips() string {
	var b strings.Builder
	b.WriteString(tuistyles.SectionTitleStyle.Render("Strategy Tips"))
	for _, tip := range output.StrategyTips(m.policy) {
		b.WriteString("\n")
		b.WriteString(tuistyles.BulletStyle.Render("• "))
		b.WriteString(tuistyles.TipStyle.Render(tip))
	}
	return b.String()
}

func (m *Model) renderAdvisory() string {
	title := tuistyles.SectionTitleStyle.Render("Strategy Audit")
	var content string
	switch {
	case m.pendingID != "":
		content = m.spinner.View() + " " + tuistyles.InfoStyle.Render("Analyzing your strategy...")
	case m.advice != "":
		content = strings.TrimSpace(m.advice)
	default:
		content = tuistyles.SubtitleStyle.Render("Adjust an input to request commentary.")
	}
	return tuistyles.AdvisoryPanelStyle.Width(80).Render(title + "\n" + content)
}
