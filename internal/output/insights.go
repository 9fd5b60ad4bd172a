package output

import (
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// WaterfallAge is the ledger age the monthly breakdown is drawn for.
const WaterfallAge = 62

// BreakdownStep is one bar of the monthly benefit waterfall
type BreakdownStep struct {
	Label    string
	Amount   string
	Value    decimal.Decimal
	Negative bool
}

// WaterfallSteps renders result.BreakdownAt(WaterfallAge) as labeled steps
func WaterfallSteps(result *domain.SimulationResult) (int, []BreakdownStep) {
	b := result.BreakdownAt(WaterfallAge)
	return b.Age, []BreakdownStep{
		{Label: "Gross Potential", Amount: FormatMoney(b.Gross), Value: b.Gross},
		{Label: "Earnings Penalty", Amount: FormatMoney(b.Withheld), Value: b.Withheld, Negative: true},
		{Label: "Est. Tax", Amount: FormatMoney(b.Tax), Value: b.Tax, Negative: true},
		{Label: "Net Monthly", Amount: FormatMoney(b.Net), Value: b.Net},
	}
}

// StrategyTips returns the standing guidance shown next to every projection
func StrategyTips(policy domain.BenefitPolicy) []string {
	return []string{
		fmt.Sprintf("Survivor benefits reach their max at FRA. There are NO delayed credits after %d.", policy.FullRetirementAge),
		fmt.Sprintf("If you earn more than %s (est.), the Earnings Test will claw back $1 for every %s.",
			FormatDollars(policy.EarningsTest.AnnualEarningsLimit), earningsRatio(policy)),
		fmt.Sprintf("You can claim a survivor benefit early and let your own retirement benefit grow until age %d.", policy.MaxClaimAge),
	}
}

func earningsRatio(policy domain.BenefitPolicy) string {
	rate := policy.EarningsTest.ReductionRate
	if !rate.IsPositive() {
		return "dollar over the limit"
	}
	per := decimal.NewFromInt(1).Div(rate)
	if per.Equal(per.Round(0)) {
		return FormatDollars(per)
	}
	return FormatMoney(per)
}

// ExposureSentence describes the exposure zone in words
func ExposureSentence(result *domain.SimulationResult) string {
	return fmt.Sprintf("Your current combined income places you in the %s exposure zone for benefit taxation.", result.ExposureZone())
}
