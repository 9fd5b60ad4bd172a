package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/ssgo/internal/advisor"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	params := domain.DefaultParameters()
	params.StartYear = 2026
	m := NewModel(Config{
		Params:   params,
		Logger:   zaptest.NewLogger(t),
		Debounce: time.Hour, // never fires during a test
	})
	t.Cleanup(m.Close)
	return m
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestNewModel_ProjectsDefaults(t *testing.T) {
	m := newTestModel(t)

	require.NotNil(t, m.Result())
	assert.True(t, m.Result().TotalLifetimeValue.Equal(decimal.NewFromInt(613536)))
	assert.NotEmpty(t, m.pendingID)
	assert.Len(t, m.sliders, int(fieldFilingStatus))

	view := m.View()
	assert.Contains(t, view, "SURVIVOR BENEFIT STRATEGY")
	assert.Contains(t, view, "Ladder of Growth")
	assert.Contains(t, view, "Monthly Net (Est.)")
	assert.Contains(t, view, "$613,536")
	assert.Contains(t, view, "Strategy Tips")
	assert.Contains(t, view, "Analyzing your strategy")
}

func TestUpdate_AdjustSliderResimulates(t *testing.T) {
	m := newTestModel(t)
	before := m.Result().MonthlyBenefit
	firstID := m.pendingID

	cmd := press(m, keyRight)

	assert.NotNil(t, cmd)
	assert.True(t, m.Params().DeceasedPIA.Equal(decimal.NewFromInt(2850)))
	assert.True(t, m.Result().MonthlyBenefit.GreaterThan(before))
	assert.NotEqual(t, firstID, m.pendingID)
}

func TestUpdate_FilingStatusRow(t *testing.T) {
	m := newTestModel(t)

	press(m, keyUp)
	assert.Equal(t, fieldFilingStatus, m.focus)

	press(m, keyRight)
	assert.Equal(t, domain.FilingMarriedJointly, m.Params().FilingStatus)

	press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.FilingHeadOfHousehold, m.Params().FilingStatus)

	press(m, runes("f"))
	assert.Equal(t, domain.FilingSingle, m.Params().FilingStatus)

	press(m, keyDown)
	assert.Equal(t, fieldDeceasedPIA, m.focus)
}

func TestUpdate_InvalidInputsShowError(t *testing.T) {
	m := newTestModel(t)

	// life expectancy 88 -> 70, current age 62 -> 72
	press(m, keyDown, keyDown, keyDown, keyDown)
	require.Equal(t, fieldLifeExpectancy, m.focus)
	press(m, runes("H"), runes("H"))
	press(m, keyUp, keyUp)
	require.Equal(t, fieldCurrentAge, m.focus)
	cmd := press(m, runes("L"))

	assert.Nil(t, cmd)
	assert.Nil(t, m.Result())
	assert.ErrorIs(t, m.err, domain.ErrInvalidParameters)
	assert.Empty(t, m.pendingID)
	assert.Contains(t, m.View(), "Cannot project this scenario")
}

func TestUpdate_AdvisoryMessages(t *testing.T) {
	m := newTestModel(t)
	current := m.pendingID

	_, cmd := m.Update(AdvisoryMsg{Insight: advisor.Insight{RequestID: "stale", Text: "old news"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, current, m.pendingID)
	assert.Empty(t, m.advice)

	_, cmd = m.Update(AdvisoryMsg{Insight: advisor.Insight{RequestID: current, Text: "**Claim** at 67."}})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.pendingID)
	assert.Contains(t, m.advice, "Claim")
	assert.NotContains(t, m.View(), "Analyzing your strategy")
}

func TestUpdate_LedgerView(t *testing.T) {
	m := newTestModel(t)

	press(m, keyTab)
	assert.Equal(t, viewLedger, m.view)
	assert.Len(t, m.ledger.Rows(), 27)
	assert.Contains(t, m.View(), "Yearly Ledger")

	// arrows scroll the ledger instead of moving slider focus
	press(m, keyDown)
	assert.Equal(t, fieldDeceasedPIA, m.focus)

	press(m, keyTab)
	assert.Equal(t, viewChart, m.view)
}

func TestUpdate_Reset(t *testing.T) {
	m := newTestModel(t)
	press(m, keyRight, keyRight, keyDown, keyRight)
	require.False(t, m.Params().DeceasedPIA.Equal(decimal.NewFromInt(2800)))

	press(m, runes("r"))
	assert.True(t, m.Params().DeceasedPIA.Equal(decimal.NewFromInt(2800)))
	assert.True(t, m.Params().OwnPIA.Equal(decimal.NewFromInt(2100)))
	assert.Equal(t, fieldDeceasedPIA, m.focus)
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDeliverLatest_KeepsNewest(t *testing.T) {
	ch := make(chan advisor.Insight, 1)
	deliver := deliverLatest(ch)

	deliver(advisor.Insight{RequestID: "a"})
	deliver(advisor.Insight{RequestID: "b"})

	got := <-ch
	assert.Equal(t, "b", got.RequestID)
	assert.Empty(t, ch)
}

func TestNewSliders_WidenForLoadedScenario(t *testing.T) {
	params := domain.DefaultParameters()
	params.AnnualEarnings = decimal.NewFromInt(200000)
	sliders := newSliders(domain.Policy2026(), params)

	earnings := sliders[fieldEarnings]
	assert.Equal(t, 200000, earnings.Value)
	assert.Equal(t, 200000, earnings.Max)
}
