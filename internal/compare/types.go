package compare

import (
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one policy run with its headline metrics
type ComparisonResult struct {
	PolicyYear  int                      `json:"policyYear"`
	Description string                   `json:"description"`
	Result      *domain.SimulationResult `json:"-"`

	// Key Metrics
	MonthlyBenefit   decimal.Decimal `json:"monthlyBenefit"`
	LifetimeNet      decimal.Decimal `json:"lifetimeNet"`
	EarningsWithheld decimal.Decimal `json:"earningsWithheld"`
	LifetimeTax      decimal.Decimal `json:"lifetimeTax"`
	TaxExposure      decimal.Decimal `json:"taxExposure"`

	// Comparison to Base
	LifetimeDiffFromBase decimal.Decimal `json:"lifetimeDiffFromBase"`
	LifetimePctFromBase  decimal.Decimal `json:"lifetimePctFromBase"`
	WithheldDiffFromBase decimal.Decimal `json:"withheldDiffFromBase"`
	TaxDiffFromBase      decimal.Decimal `json:"taxDiffFromBase"`
}

// Label names the policy for display
func (r *ComparisonResult) Label() string {
	return fmt.Sprintf("%d rules", r.PolicyYear)
}

// ComparisonSet is the base policy run plus every alternative
type ComparisonSet struct {
	BasePolicyYear     int                `json:"basePolicyYear"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath"`
}

// CalculateMetrics extracts the headline metrics from a simulation
func CalculateMetrics(policy domain.BenefitPolicy, result *domain.SimulationResult) ComparisonResult {
	return ComparisonResult{
		PolicyYear:       policy.Year,
		Description:      policy.Description,
		Result:           result,
		MonthlyBenefit:   result.MonthlyBenefit,
		LifetimeNet:      result.TotalLifetimeValue,
		EarningsWithheld: result.EarningsPenaltyTotal,
		LifetimeTax:      lifetimeTax(result),
		TaxExposure:      result.TaxExposure,
	}
}

// CalculateComparison fills in the deltas of alt against base
func CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.LifetimeDiffFromBase = alt.LifetimeNet.Sub(base.LifetimeNet)
	if !base.LifetimeNet.IsZero() {
		alt.LifetimePctFromBase = alt.LifetimeDiffFromBase.
			Div(base.LifetimeNet).
			Mul(decimal.NewFromInt(100))
	}
	alt.WithheldDiffFromBase = alt.EarningsWithheld.Sub(base.EarningsWithheld)
	alt.TaxDiffFromBase = alt.LifetimeTax.Sub(base.LifetimeTax)
	return alt
}

func lifetimeTax(result *domain.SimulationResult) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range result.YearlyData {
		total = total.Add(rec.EstimatedTax)
	}
	return total
}

// GenerateRecommendations summarizes which policy treats the claimant best
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeNet.GreaterThan(best.LifetimeNet) {
			best = alt
		}
	}
	if best != compSet.BaseResult {
		diff := best.LifetimeNet.Sub(compSet.BaseResult.LifetimeNet)
		recommendations = append(recommendations,
			fmt.Sprintf("Highest Lifetime Net: %s pays $%s more than the %d base",
				best.Label(), diff.StringFixed(0), compSet.BasePolicyYear))
	}

	leastWithheld := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.EarningsWithheld.LessThan(leastWithheld.EarningsWithheld) {
			leastWithheld = alt
		}
	}
	if leastWithheld != compSet.BaseResult {
		saved := compSet.BaseResult.EarningsWithheld.Sub(leastWithheld.EarningsWithheld)
		recommendations = append(recommendations,
			fmt.Sprintf("Smallest Earnings Test Hit: %s withholds $%s less", leastWithheld.Label(), saved.StringFixed(0)))
	}

	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeTax.LessThan(lowestTax.LifetimeTax) {
			lowestTax = alt
		}
	}
	if lowestTax != compSet.BaseResult {
		saved := compSet.BaseResult.LifetimeTax.Sub(lowestTax.LifetimeTax)
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Taxes: %s saves $%s in estimated tax", lowestTax.Label(), saved.StringFixed(0)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("No alternative improves on the %d rules for this scenario", compSet.BasePolicyYear))
	}
	return recommendations
}
