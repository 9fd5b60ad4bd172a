package calculation

import (
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// EarningsWithholding returns the annual benefit withheld under the retirement
// earnings test. Nothing is withheld at or after FRA. Before FRA the policy's
// ReductionRate is applied to wages above AnnualEarningsLimit, uncapped; the
// caller limits the effect to the gross benefit.
func EarningsWithholding(annualEarnings decimal.Decimal, age int, policy domain.BenefitPolicy) decimal.Decimal {
	if age >= policy.FullRetirementAge {
		return decimal.Zero
	}
	excess := annualEarnings.Sub(policy.EarningsTest.AnnualEarningsLimit)
	if !excess.IsPositive() {
		return decimal.Zero
	}
	return excess.Mul(policy.EarningsTest.ReductionRate)
}
