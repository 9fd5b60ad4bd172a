package calculation

import (
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// benefitPrecision bounds the decimal places of a reduced benefit
const benefitPrecision = 10

// ReduceForEarlyClaim applies the survivor early-claim reduction to a full benefit.
// At or after FRA the full amount is payable; survivors earn no delayed credits.
// Before FRA the reduction is linear in months early, reaching
// SurvivorEarlyReductionMax at SurvivorMinAge.
func ReduceForEarlyClaim(fullBenefit decimal.Decimal, claim domain.ClaimAge, policy domain.BenefitPolicy) decimal.Decimal {
	fra := policy.FullRetirementAge
	if claim.Years() >= fra {
		return fullBenefit
	}

	monthsEarly := decimal.NewFromInt(int64((fra - claim.Years()) * 12))
	reductionWindow := decimal.NewFromInt(int64((fra - policy.SurvivorMinAge) * 12))

	// full * (window - monthsEarly*max) / window, dividing last
	kept := reductionWindow.Sub(monthsEarly.Mul(policy.SurvivorEarlyReductionMax))
	return fullBenefit.Mul(kept).Div(reductionWindow).Round(benefitPrecision)
}
