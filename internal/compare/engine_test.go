package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// policy2025 is the 2026 rule set with a lower earnings test limit
func policy2025() domain.BenefitPolicy {
	p := domain.Policy2026()
	p.Year = 2025
	p.Description = "2025 survivor benefit rules"
	p.EarningsTest.AnnualEarningsLimit = decimal.NewFromInt(23000)
	return p
}

func earlyClaimParams() domain.Parameters {
	params := domain.DefaultParameters()
	params.TargetClaimingAge = 62
	params.StartYear = 2026
	return params
}

func TestCompareEngine_ComparePolicies(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())

	set, err := ce.ComparePolicies(context.Background(), earlyClaimParams(),
		[]domain.BenefitPolicy{domain.Policy2026(), policy2025()})
	require.NoError(t, err)

	assert.Equal(t, 2026, set.BasePolicyYear)
	require.NotNil(t, set.BaseResult)
	require.Len(t, set.AlternativeResults, 1)

	alt := set.AlternativeResults[0]
	assert.Equal(t, 2025, alt.PolicyYear)
	// 400 more excess earnings at $1 per $2 for five years before FRA
	assert.True(t, alt.WithheldDiffFromBase.Equal(decimal.NewFromInt(1000)), "got %s", alt.WithheldDiffFromBase)
	assert.True(t, alt.LifetimeDiffFromBase.IsNegative())
	assert.True(t, alt.LifetimeNet.Equal(set.BaseResult.LifetimeNet.Add(alt.LifetimeDiffFromBase)))
	assert.NotEmpty(t, set.Recommendations)
}

func TestCompareEngine_BaseOnly(t *testing.T) {
	set, err := NewCompareEngine(nil).ComparePolicies(context.Background(), domain.DefaultParameters(),
		[]domain.BenefitPolicy{domain.Policy2026()})
	require.NoError(t, err)
	assert.Empty(t, set.AlternativeResults)
	assert.Empty(t, set.Recommendations)
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := NewCompareEngine(nil)

	_, err := ce.ComparePolicies(context.Background(), domain.DefaultParameters(), nil)
	assert.True(t, errors.Is(err, ErrNoPolicies))

	bad := domain.DefaultParameters()
	bad.TargetClaimingAge = 75
	_, err = ce.ComparePolicies(context.Background(), bad, []domain.BenefitPolicy{domain.Policy2026(), policy2025()})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ce.MaxParallel = 1
	_, err = ce.ComparePolicies(ctx, domain.DefaultParameters(), []domain.BenefitPolicy{domain.Policy2026()})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateRecommendations_NoImprovement(t *testing.T) {
	base := &ComparisonResult{PolicyYear: 2026, LifetimeNet: decimal.NewFromInt(100)}
	set := &ComparisonSet{
		BasePolicyYear:     2026,
		BaseResult:         base,
		AlternativeResults: []ComparisonResult{{PolicyYear: 2025, LifetimeNet: decimal.NewFromInt(90)}},
	}
	recs := GenerateRecommendations(set)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "No alternative improves")
}
