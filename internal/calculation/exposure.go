package calculation

import (
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Buffers widen the exposure band below Threshold1 and above Threshold2.
var (
	exposureLowBuffer  = decimal.NewFromInt(5000)
	exposureHighBuffer = decimal.NewFromInt(10000)
)

// TaxExposure scores 0-100 how far the claimant's base income sits in the
// taxation band. The base is wages + interest + half of one full year of the
// claim-adjusted benefit, whether or not the claim has started.
func TaxExposure(annualEarnings, nontaxableInterest, monthlyBenefit decimal.Decimal, status domain.FilingStatus, policy domain.BenefitPolicy) decimal.Decimal {
	t := policy.ThresholdsFor(status)
	base := CombinedIncome(monthlyBenefit.Mul(twelveMonths), annualEarnings, nontaxableInterest)

	floor := t.Threshold1.Sub(exposureLowBuffer)
	ceiling := t.Threshold2.Add(exposureHighBuffer)
	span := ceiling.Sub(floor)
	if !span.IsPositive() {
		return decimal.Zero
	}

	score := base.Sub(floor).Div(span).Mul(hundred)
	switch {
	case score.IsNegative():
		return decimal.Zero
	case score.GreaterThan(hundred):
		return hundred
	}
	return score
}
