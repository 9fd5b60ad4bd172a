package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/ssgo/internal/advisor"
)

// AdvisoryMsg carries a finished commentary request back into the update loop
type AdvisoryMsg struct {
	Insight advisor.Insight
}

// waitForInsight blocks on the debouncer's delivery channel
func waitForInsight(ch <-chan advisor.Insight) tea.Cmd {
	return func() tea.Msg {
		return AdvisoryMsg{Insight: <-ch}
	}
}

// deliverLatest returns a debouncer callback that keeps only the newest insight
// in a one-slot channel.
func deliverLatest(ch chan advisor.Insight) func(advisor.Insight) {
	return func(in advisor.Insight) {
		for {
			select {
			case ch <- in:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	}
}
