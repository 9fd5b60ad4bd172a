package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct {
	text string
	err  error
}

func (s stubAdvisor) Advise(context.Context, Request) (string, error) { return s.text, s.err }

// blockingAdvisor waits for cancellation
type blockingAdvisor struct{}

func (blockingAdvisor) Advise(ctx context.Context, _ Request) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func sampleRequest(t *testing.T) Request {
	t.Helper()
	params := domain.DefaultParameters()
	result, err := calculation.NewEngine().Simulate(params, domain.Policy2026())
	require.NoError(t, err)
	return NewRequest(params, result)
}

func TestBuildPrompt(t *testing.T) {
	req := sampleRequest(t)
	prompt := BuildPrompt(req.Params, req.Result)

	assert.Contains(t, prompt, "analyze these parameters for a widow")
	assert.Contains(t, prompt, "- Current Age: 62")
	assert.Contains(t, prompt, "- Deceased Spouse PIA: $2,800")
	assert.Contains(t, prompt, "- User's Personal PIA: $2,100")
	assert.Contains(t, prompt, "- Target Claiming Age: 67")
	assert.Contains(t, prompt, "- Annual Earnings: $45,000")
	assert.Contains(t, prompt, "- Filing Status: Single")
	assert.Contains(t, prompt, "- Estimated Lifetime Net Benefit: $613,536")
	assert.Contains(t, prompt, "- Earnings Penalty Exposure: $0")
	assert.Contains(t, prompt, "max 150 words")
	assert.Contains(t, prompt, "switch-over")
	assert.Contains(t, prompt, "markdown bolding")
}

func TestNewRequest_UniqueIDs(t *testing.T) {
	a := sampleRequest(t)
	b := sampleRequest(t)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFetch(t *testing.T) {
	req := sampleRequest(t)

	tests := []struct {
		name         string
		adv          Advisor
		expected     string
		wantFallback bool
	}{
		{"success", stubAdvisor{text: "**Claim at 67.**"}, "**Claim at 67.**", false},
		{"error", stubAdvisor{err: errors.New("boom")}, OfflineMessage, true},
		{"empty", stubAdvisor{text: "  \n"}, EmptyMessage, true},
		{"offline", Offline{}, OfflineMessage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := Fetch(context.Background(), tt.adv, req, time.Second)
			assert.Equal(t, tt.expected, insight.Text)
			assert.Equal(t, tt.wantFallback, insight.Fallback)
			assert.Equal(t, req.ID, insight.RequestID)
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	insight := Fetch(context.Background(), blockingAdvisor{}, sampleRequest(t), 20*time.Millisecond)
	assert.Equal(t, OfflineMessage, insight.Text)
	assert.True(t, errors.Is(insight.Err, context.DeadlineExceeded))
}

func TestNewGeminiAdvisor_RequiresKey(t *testing.T) {
	_, err := NewGeminiAdvisor(context.Background(), "", "", nil)
	assert.True(t, errors.Is(err, ErrNoAPIKey))
}

func TestNewGeminiAdvisor_Model(t *testing.T) {
	g, err := NewGeminiAdvisor(context.Background(), "test-key", "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.Model())

	g, err = NewGeminiAdvisor(context.Background(), "test-key", "gemini-custom", nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini-custom", g.Model())
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "fallback-key")
	assert.Equal(t, "fallback-key", APIKeyFromEnv())

	t.Setenv("GEMINI_API_KEY", "primary-key")
	assert.Equal(t, "primary-key", APIKeyFromEnv())
}
