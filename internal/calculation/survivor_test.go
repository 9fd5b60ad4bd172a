package calculation

import (
	"encoding/json"
	"testing"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimAt(t *testing.T, age int, policy domain.BenefitPolicy) domain.ClaimAge {
	t.Helper()
	claim, err := domain.NewClaimAge(age, policy)
	require.NoError(t, err)
	return claim
}

func TestReduceForEarlyClaim(t *testing.T) {
	policy := domain.Policy2026()
	full := decimal.NewFromInt(2800)

	tests := []struct {
		name     string
		claimAge int
		expected decimal.Decimal
	}{
		{"at FRA", 67, decimal.NewFromInt(2800)},
		{"after FRA earns no credit", 70, decimal.NewFromInt(2800)},
		{"at 60 takes max reduction", 60, decimal.NewFromInt(2002)},
		// 60 of 84 months early: 2800 * (84 - 60*0.285) / 84
		{"at 62", 62, decimal.NewFromInt(2230)},
		{"at 61", 61, decimal.NewFromInt(2116)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceForEarlyClaim(full, claimAt(t, tt.claimAge, policy), policy)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestReduceForEarlyClaim_Monotone(t *testing.T) {
	policy := domain.Policy2026()
	full := decimal.NewFromInt(1500)

	prev := decimal.Zero
	for age := policy.SurvivorMinAge; age <= policy.MaxClaimAge; age++ {
		got := ReduceForEarlyClaim(full, claimAt(t, age, policy), policy)
		assert.True(t, got.GreaterThanOrEqual(prev), "age %d went down", age)
		assert.True(t, got.LessThanOrEqual(full))
		prev = got
	}
}

func TestReduceForEarlyClaim_SerializesCleanly(t *testing.T) {
	policy := domain.Policy2026()
	full := decimal.NewFromInt(2800)

	tests := []struct {
		age  int
		want string
	}{
		{62, "2230"},
		{61, "2116"},
		{65, "2572"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := ReduceForEarlyClaim(full, claimAt(t, tt.age, policy), policy)
			assert.Equal(t, tt.want, got.String())

			data, err := json.Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.want+`"`, string(data))
		})
	}

	// non-terminating ratios stay bounded
	odd := ReduceForEarlyClaim(decimal.NewFromInt(1001), claimAt(t, 63, policy), policy)
	assert.LessOrEqual(t, -odd.Exponent(), int32(benefitPrecision))
}

func TestEarningsWithholding(t *testing.T) {
	policy := domain.Policy2026()

	tests := []struct {
		name     string
		earnings int64
		age      int
		expected int64
	}{
		{"at FRA", 100000, 67, 0},
		{"after FRA", 100000, 69, 0},
		{"under limit", 20000, 62, 0},
		{"at limit", 23400, 62, 0},
		{"one dollar per two over", 25400, 62, 1000},
		{"sample scenario", 45000, 63, 10800},
		{"zero earnings", 0, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EarningsWithholding(decimal.NewFromInt(tt.earnings), tt.age, policy)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(got), "expected %d, got %s", tt.expected, got)
		})
	}
}
