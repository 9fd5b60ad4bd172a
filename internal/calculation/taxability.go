package calculation

import (
	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	half         = decimal.NewFromFloat(0.5)
	eightyFive   = decimal.NewFromFloat(0.85)
	hundred      = decimal.NewFromInt(100)
	twelveMonths = decimal.NewFromInt(12)
)

// CombinedIncome = other income + nontaxable interest + 1/2 of annual benefits
func CombinedIncome(annualBenefit, otherIncome, nontaxableInterest decimal.Decimal) decimal.Decimal {
	return otherIncome.Add(nontaxableInterest).Add(annualBenefit.Mul(half))
}

// TaxableBenefit determines the federally taxable portion of an annual benefit
// using the two-tier combined income rule. Unknown filing statuses use the
// Single breakpoints.
//   - combined <= Threshold1: nothing is taxable
//   - combined <= Threshold2: lesser of 50% of benefit or 50% of the excess over Threshold1
//   - otherwise: lesser of 85% of benefit or 50% of the first tier plus 85% of the excess over Threshold2
func TaxableBenefit(annualBenefit, otherIncome, nontaxableInterest decimal.Decimal, status domain.FilingStatus, policy domain.BenefitPolicy) decimal.Decimal {
	t := policy.ThresholdsFor(status)
	combined := CombinedIncome(annualBenefit, otherIncome, nontaxableInterest)

	if combined.LessThanOrEqual(t.Threshold1) {
		return decimal.Zero
	}
	if combined.LessThanOrEqual(t.Threshold2) {
		return decimal.Min(
			annualBenefit.Mul(half),
			combined.Sub(t.Threshold1).Mul(half),
		)
	}

	tierOne := t.Threshold2.Sub(t.Threshold1).Mul(half)
	tierTwo := combined.Sub(t.Threshold2).Mul(eightyFive)
	return decimal.Min(annualBenefit.Mul(eightyFive), tierOne.Add(tierTwo))
}
