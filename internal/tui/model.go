// Package tui is the interactive survivor benefit dashboard.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
	"github.com/rgehrsitz/ssgo/internal/advisor"
	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/output"
	"github.com/rgehrsitz/ssgo/internal/tui/components"
	"github.com/rgehrsitz/ssgo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// field indexes the parameter sliders
type field int

const (
	fieldDeceasedPIA field = iota
	fieldOwnPIA
	fieldCurrentAge
	fieldClaimAge
	fieldLifeExpectancy
	fieldEarnings
	fieldInterest
	fieldFilingStatus // not a slider; cycles through filing statuses
)

type viewMode int

const (
	viewChart viewMode = iota
	viewLedger
)

// Config wires the dashboard's collaborators
type Config struct {
	Engine   *calculation.Engine
	Policy   domain.BenefitPolicy
	Params   domain.Parameters
	Advisor  advisor.Advisor
	Logger   *zap.Logger
	Debounce time.Duration
	Timeout  time.Duration
}

// Model is the bubbletea model for the dashboard
type Model struct {
	engine  *calculation.Engine
	policy  domain.BenefitPolicy
	initial domain.Parameters
	params  domain.Parameters
	logger  *zap.Logger

	sliders []*components.ParameterSlider
	focus   field
	view    viewMode

	result *domain.SimulationResult
	err    error

	ledger   table.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	renderer *glamour.TermRenderer

	debouncer *advisor.Debouncer
	insights  chan advisor.Insight
	pendingID string
	advice    string

	width  int
	height int
}

// NewModel builds the dashboard and runs the first projection
func NewModel(cfg Config) *Model {
	if cfg.Engine == nil {
		cfg.Engine = calculation.NewEngine()
	}
	if cfg.Policy.Year == 0 {
		cfg.Policy = domain.Policy2026()
	}
	if cfg.Params.FilingStatus == "" {
		cfg.Params.FilingStatus = domain.FilingSingle
	}
	if cfg.Advisor == nil {
		cfg.Advisor = advisor.Offline{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tuistyles.InfoStyle

	m := &Model{
		engine:   cfg.Engine,
		policy:   cfg.Policy,
		initial:  cfg.Params,
		params:   cfg.Params,
		logger:   cfg.Logger,
		ledger:   newLedgerTable(),
		spinner:  sp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		insights: make(chan advisor.Insight, 1),
		width:    120,
	}

	opts := []advisor.DebouncerOption{advisor.WithLogger(cfg.Logger)}
	if cfg.Debounce > 0 {
		opts = append(opts, advisor.WithInterval(cfg.Debounce))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, advisor.WithTimeout(cfg.Timeout))
	}
	m.debouncer = advisor.NewDebouncer(cfg.Advisor, deliverLatest(m.insights), opts...)

	if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(76)); err == nil {
		m.renderer = r
	} else {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
	}

	m.sliders = newSliders(m.policy, m.params)
	m.sliders[m.focus].SetFocused(true)
	m.recalculate()
	return m
}

// Close stops any pending advisory work
func (m *Model) Close() {
	m.debouncer.Close()
}

// Result returns the latest projection, nil while the inputs are invalid
func (m *Model) Result() *domain.SimulationResult { return m.result }

// Params returns the inputs as currently set on the sliders
func (m *Model) Params() domain.Parameters { return m.params }

func newSliders(policy domain.BenefitPolicy, p domain.Parameters) []*components.ParameterSlider {
	dollars := func(v int) string { return output.FormatDollars(decimal.NewFromInt(int64(v))) }
	years := func(v int) string { return fmt.Sprintf("%d", v) }

	mk := func(label string, value, min, max, step int, f func(int) string) *components.ParameterSlider {
		// widen the range so a loaded scenario is never clamped
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
		return components.NewParameterSlider(label, value, min, max, step).WithFormatter(f)
	}

	return []*components.ParameterSlider{
		fieldDeceasedPIA:    mk("Deceased Spouse PIA", int(p.DeceasedPIA.IntPart()), 0, 5000, 50, dollars),
		fieldOwnPIA:         mk("Your Own PIA", int(p.OwnPIA.IntPart()), 0, 5000, 50, dollars),
		fieldCurrentAge:     mk("Current Age", p.CurrentAge, policy.SurvivorMinAge, 75, 1, years),
		fieldClaimAge:       mk("Claiming Age", p.TargetClaimingAge, policy.SurvivorMinAge, policy.MaxClaimAge, 1, years),
		fieldLifeExpectancy: mk("Life Expectancy", p.LifeExpectancy, 70, 100, 1, years),
		fieldEarnings:       mk("Annual Earnings", int(p.AnnualEarnings.IntPart()), 0, 150000, 1000, dollars),
		fieldInterest:       mk("Nontaxable Interest", int(p.NontaxableInterest.IntPart()), 0, 20000, 100, dollars),
	}
}

func newLedgerTable() table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 4},
		{Title: "Year", Width: 5},
		{Title: "Gross", Width: 10},
		{Title: "Withheld", Width: 10},
		{Title: "Taxable", Width: 10},
		{Title: "Tax", Width: 9},
		{Title: "Net", Width: 10},
		{Title: "Cumulative", Width: 11},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

// syncParams copies slider values into params
func (m *Model) syncParams() {
	v := func(f field) int { return m.sliders[f].Value }
	m.params.DeceasedPIA = decimal.NewFromInt(int64(v(fieldDeceasedPIA)))
	m.params.OwnPIA = decimal.NewFromInt(int64(v(fieldOwnPIA)))
	m.params.CurrentAge = v(fieldCurrentAge)
	m.params.TargetClaimingAge = v(fieldClaimAge)
	m.params.LifeExpectancy = v(fieldLifeExpectancy)
	m.params.AnnualEarnings = decimal.NewFromInt(int64(v(fieldEarnings)))
	m.params.NontaxableInterest = decimal.NewFromInt(int64(v(fieldInterest)))
}

// recalculate re-runs the projection and schedules fresh commentary. It reports
// whether an advisory request was queued.
func (m *Model) recalculate() bool {
	m.syncParams()

	result, err := m.engine.Simulate(m.params, m.policy)
	if err != nil {
		m.result, m.err = nil, err
		m.pendingID = ""
		m.logger.Debug("projection rejected", zap.Error(err))
		return false
	}
	m.result, m.err = result, nil
	m.ledger.SetRows(ledgerRows(result))

	req := advisor.NewRequest(m.params, result)
	m.pendingID = req.ID
	m.debouncer.Trigger(req)
	return true
}

func ledgerRows(result *domain.SimulationResult) []table.Row {
	rows := make([]table.Row, 0, len(result.YearlyData))
	for _, r := range result.YearlyData {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Age),
			fmt.Sprintf("%d", r.Year),
			output.FormatDollars(r.GrossBenefit),
			output.FormatDollars(r.EarningsWithheld),
			output.FormatDollars(r.TaxablePortion),
			output.FormatDollars(r.EstimatedTax),
			output.FormatDollars(r.NetBenefit),
			output.FormatDollars(r.CumulativeNet),
		})
	}
	return rows
}

// renderAdvice formats commentary markdown, falling back to plain text
func (m *Model) renderAdvice(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}
