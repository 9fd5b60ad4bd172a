package domain

import "github.com/shopspring/decimal"

// YearRecord is one row of the yearly ledger
type YearRecord struct {
	Age              int             `yaml:"age" json:"age"`
	Year             int             `yaml:"year" json:"year"`
	GrossBenefit     decimal.Decimal `yaml:"gross_benefit" json:"grossBenefit"`
	EarningsWithheld decimal.Decimal `yaml:"earnings_withheld" json:"earningsWithheld"`
	TaxablePortion   decimal.Decimal `yaml:"taxable_portion" json:"taxablePortion"`
	EstimatedTax     decimal.Decimal `yaml:"estimated_tax" json:"estimatedTax"`
	NetBenefit       decimal.Decimal `yaml:"net_benefit" json:"netBenefit"`
	CumulativeNet    decimal.Decimal `yaml:"cumulative_net" json:"cumulativeNet"`
}

// SimulationResult is the output of a single projection
type SimulationResult struct {
	PolicyYear           int             `yaml:"policy_year" json:"policyYear"`
	MonthlyBenefit       decimal.Decimal `yaml:"monthly_benefit" json:"monthlyBenefit"`
	TotalLifetimeValue   decimal.Decimal `yaml:"total_lifetime_value" json:"totalLifetimeValue"`
	YearlyData           []YearRecord    `yaml:"yearly_data" json:"yearlyData"`
	TaxExposure          decimal.Decimal `yaml:"tax_exposure" json:"taxExposure"`
	EarningsPenaltyTotal decimal.Decimal `yaml:"earnings_penalty_total" json:"earningsPenaltyTotal"`
	// BreakEvenAge is not computed and is always nil
	BreakEvenAge *int `yaml:"break_even_age" json:"breakEvenAge"`
}

// ExposureZone buckets the tax-exposure score
type ExposureZone string

const (
	ExposureLow      ExposureZone = "Low"
	ExposureModerate ExposureZone = "Moderate"
	ExposureHigh     ExposureZone = "High"
)

var (
	moderateCutoff = decimal.NewFromInt(40)
	highCutoff     = decimal.NewFromInt(80)
	twelve         = decimal.NewFromInt(12)
)

// ExposureZone returns High above 80, Moderate above 40 and Low otherwise
func (r *SimulationResult) ExposureZone() ExposureZone {
	switch {
	case r.TaxExposure.GreaterThan(highCutoff):
		return ExposureHigh
	case r.TaxExposure.GreaterThan(moderateCutoff):
		return ExposureModerate
	default:
		return ExposureLow
	}
}

// RecordForAge returns the ledger row for age, or false when the age is outside the horizon
func (r *SimulationResult) RecordForAge(age int) (YearRecord, bool) {
	for _, rec := range r.YearlyData {
		if rec.Age == age {
			return rec, true
		}
	}
	return YearRecord{}, false
}

// MonthlyNetAt is the annual net benefit at age divided by twelve. Ages outside
// the horizon return zero.
func (r *SimulationResult) MonthlyNetAt(age int) decimal.Decimal {
	rec, ok := r.RecordForAge(age)
	if !ok {
		return decimal.Zero
	}
	return rec.NetBenefit.Div(twelve)
}

// MonthlyBreakdown splits one ledger year into per-month amounts
type MonthlyBreakdown struct {
	Age      int             `yaml:"age" json:"age"`
	Gross    decimal.Decimal `yaml:"gross" json:"gross"`
	Withheld decimal.Decimal `yaml:"withheld" json:"withheld"`
	Tax      decimal.Decimal `yaml:"tax" json:"tax"`
	Net      decimal.Decimal `yaml:"net" json:"net"`
}

// BreakdownAt returns the monthly breakdown for age. When age is outside the
// horizon the first ledger row is used instead.
func (r *SimulationResult) BreakdownAt(age int) MonthlyBreakdown {
	rec, ok := r.RecordForAge(age)
	if !ok {
		if len(r.YearlyData) == 0 {
			return MonthlyBreakdown{Age: age}
		}
		rec = r.YearlyData[0]
	}
	return MonthlyBreakdown{
		Age:      rec.Age,
		Gross:    rec.GrossBenefit.Div(twelve),
		Withheld: rec.EarningsWithheld.Div(twelve),
		Tax:      rec.EstimatedTax.Div(twelve),
		Net:      rec.NetBenefit.Div(twelve),
	}
}

// FirstClaimingRecord returns the first row with a non-zero gross benefit
func (r *SimulationResult) FirstClaimingRecord() (YearRecord, bool) {
	for _, rec := range r.YearlyData {
		if rec.GrossBenefit.IsPositive() {
			return rec, true
		}
	}
	return YearRecord{}, false
}
