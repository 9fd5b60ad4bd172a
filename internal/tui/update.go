package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"go.uber.org/zap"
)

// Init starts the spinner for the first advisory request and listens for answers
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForInsight(m.insights)}
	if m.pendingID != "" {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AdvisoryMsg:
		if msg.Insight.RequestID == m.pendingID {
			m.pendingID = ""
			m.advice = m.renderAdvice(msg.Insight.Text)
		} else {
			m.logger.Debug("dropping stale advisory", zap.String("request_id", msg.Insight.RequestID))
		}
		return m, waitForInsight(m.insights)

	case spinner.TickMsg:
		if m.pendingID == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.View):
		if m.view == viewChart {
			m.view = viewLedger
		} else {
			m.view = viewChart
		}
		return m, nil
	}

	// the ledger owns the arrow keys while it is shown
	if m.view == viewLedger {
		var cmd tea.Cmd
		m.ledger, cmd = m.ledger.Update(msg)
		return m, cmd
	}

	changed := false
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Left):
		changed = m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		changed = m.adjust(1)
	case key.Matches(msg, m.keys.BigLeft):
		changed = m.adjust(-10)
	case key.Matches(msg, m.keys.BigRight):
		changed = m.adjust(10)
	case key.Matches(msg, m.keys.Filing):
		m.params.FilingStatus = m.params.FilingStatus.Next()
		changed = true
	case key.Matches(msg, m.keys.Reset):
		m.params = m.initial
		m.sliders = newSliders(m.policy, m.params)
		m.focus = fieldDeceasedPIA
		m.sliders[m.focus].SetFocused(true)
		changed = true
	}

	if changed && m.recalculate() {
		return m, m.spinner.Tick
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if m.focus < fieldFilingStatus {
		m.sliders[m.focus].SetFocused(false)
	}
	n := int(fieldFilingStatus) + 1
	m.focus = field((int(m.focus) + delta + n) % n)
	if m.focus < fieldFilingStatus {
		m.sliders[m.focus].SetFocused(true)
	}
}

// adjust moves the focused input by steps, reporting whether anything changed
func (m *Model) adjust(steps int) bool {
	if m.focus == fieldFilingStatus {
		if steps > 0 {
			m.params.FilingStatus = m.params.FilingStatus.Next()
		} else {
			m.params.FilingStatus = previousStatus(m.params.FilingStatus)
		}
		return true
	}

	s := m.sliders[m.focus]
	return s.SetValue(s.Value + steps*s.Step)
}

func previousStatus(f domain.FilingStatus) domain.FilingStatus {
	n := len(domain.FilingStatuses)
	for i, s := range domain.FilingStatuses {
		if s == f {
			return domain.FilingStatuses[(i+n-1)%n]
		}
	}
	return domain.FilingSingle
}
