// Package advisor produces narrative commentary on a projection. Commentary is
// advisory only: failures are replaced with fixed fallback text and never
// affect the simulation.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/output"
)

const (
	// OfflineMessage replaces the commentary when the service fails.
	OfflineMessage = "Financial analysis engine is currently offline. Please check your parameters manually."
	// EmptyMessage replaces an empty answer.
	EmptyMessage = "Unable to generate analysis at this time."

	DefaultTimeout = 30 * time.Second
)

// ErrNoAPIKey is returned by the offline advisor
var ErrNoAPIKey = errors.New("no API key configured (set GEMINI_API_KEY or API_KEY)")

// Request is one commentary request tied to a specific simulation
type Request struct {
	ID     string
	Params domain.Parameters
	Result *domain.SimulationResult
}

// NewRequest tags a parameter/result pair with a fresh request id
func NewRequest(params domain.Parameters, result *domain.SimulationResult) Request {
	return Request{ID: uuid.NewString(), Params: params, Result: result}
}

// Advisor returns markdown commentary for a request
type Advisor interface {
	Advise(ctx context.Context, req Request) (string, error)
}

// Insight is the outcome of one request, fallback text included
type Insight struct {
	RequestID string
	Text      string
	Fallback  bool
	Err       error
	Latency   time.Duration
}

// Fetch calls adv with its own timeout and substitutes the fixed messages on
// failure or an empty answer. It never returns an error.
func Fetch(ctx context.Context, adv Advisor, req Request, timeout time.Duration) Insight {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	text, err := adv.Advise(ctx, req)
	insight := Insight{RequestID: req.ID, Latency: time.Since(start)}

	switch {
	case err != nil:
		insight.Text, insight.Fallback, insight.Err = OfflineMessage, true, err
	case strings.TrimSpace(text) == "":
		insight.Text, insight.Fallback = EmptyMessage, true
	default:
		insight.Text = text
	}
	return insight
}

// BuildPrompt renders the strategy audit prompt for a widow's scenario
func BuildPrompt(params domain.Parameters, result *domain.SimulationResult) string {
	var sb strings.Builder
	sb.WriteString("As a Social Security Expert, analyze these parameters for a widow:\n")
	fmt.Fprintf(&sb, "- Current Age: %d\n", params.CurrentAge)
	fmt.Fprintf(&sb, "- Deceased Spouse PIA: %s\n", output.FormatDollars(params.DeceasedPIA))
	fmt.Fprintf(&sb, "- User's Personal PIA: %s\n", output.FormatDollars(params.OwnPIA))
	fmt.Fprintf(&sb, "- Target Claiming Age: %d\n", params.TargetClaimingAge)
	fmt.Fprintf(&sb, "- Annual Earnings: %s\n", output.FormatDollars(params.AnnualEarnings))
	fmt.Fprintf(&sb, "- Filing Status: %s\n", params.FilingStatus)
	fmt.Fprintf(&sb, "- Estimated Lifetime Net Benefit: %s\n", output.FormatDollars(result.TotalLifetimeValue))
	fmt.Fprintf(&sb, "- Earnings Penalty Exposure: %s\n", output.FormatDollars(result.EarningsPenaltyTotal))
	sb.WriteString("\n")
	sb.WriteString("Provide a concise strategy audit (max 150 words).\n")
	sb.WriteString("Identify if a \"switch-over\" strategy (claiming one benefit early and switching to another later) might be superior.\n")
	sb.WriteString("Comment on the earnings test impact. Format with markdown bolding.\n")
	return sb.String()
}

// Offline always fails, so callers show the offline message
type Offline struct{}

func (Offline) Advise(context.Context, Request) (string, error) { return "", ErrNoAPIKey }
