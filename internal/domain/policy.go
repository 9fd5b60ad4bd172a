package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status used to pick taxation breakpoints
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJointly  FilingStatus = "married_filing_jointly"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// FilingStatuses lists the supported statuses in display order
var FilingStatuses = []FilingStatus{FilingSingle, FilingMarriedJointly, FilingHeadOfHousehold}

// String returns the human readable name of the filing status
func (f FilingStatus) String() string {
	switch f {
	case FilingSingle:
		return "Single"
	case FilingMarriedJointly:
		return "Married Filing Jointly"
	case FilingHeadOfHousehold:
		return "Head of Household"
	default:
		return string(f)
	}
}

// Next cycles to the following status, wrapping around
func (f FilingStatus) Next() FilingStatus {
	for i, s := range FilingStatuses {
		if s == f {
			return FilingStatuses[(i+1)%len(FilingStatuses)]
		}
	}
	return FilingSingle
}

// ParseFilingStatus accepts either the key ("married_filing_jointly") or the
// display name ("Married Filing Jointly"), case-insensitively.
func ParseFilingStatus(s string) (FilingStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case "single":
		return FilingSingle, nil
	case "married_filing_jointly", "mfj", "married":
		return FilingMarriedJointly, nil
	case "head_of_household", "hoh":
		return FilingHeadOfHousehold, nil
	}
	return "", fmt.Errorf("unknown filing status %q", s)
}

// UnmarshalText lets yaml and json decode either spelling of a status
func (f *FilingStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseFilingStatus(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TaxThreshold holds the two combined-income breakpoints for benefit taxation
type TaxThreshold struct {
	Threshold1 decimal.Decimal `yaml:"threshold_1" json:"threshold_1"` // up to 50% taxable above this
	Threshold2 decimal.Decimal `yaml:"threshold_2" json:"threshold_2"` // up to 85% taxable above this
}

// EarningsTest contains the retirement earnings test rules applied before FRA
type EarningsTest struct {
	AnnualEarningsLimit decimal.Decimal `yaml:"annual_earnings_limit" json:"annual_earnings_limit"`
	ReductionRate       decimal.Decimal `yaml:"reduction_rate" json:"reduction_rate"` // 0.50 = $1 withheld per $2 over
}

// BenefitPolicy is one versioned set of survivor benefit rules.
// Policies are passed explicitly to the engine; nothing reads them from globals.
type BenefitPolicy struct {
	Year                      int                           `yaml:"year" json:"year"`
	Description               string                        `yaml:"description" json:"description"`
	FullRetirementAge         int                           `yaml:"full_retirement_age" json:"full_retirement_age"`
	SurvivorMinAge            int                           `yaml:"survivor_min_age" json:"survivor_min_age"`
	MaxClaimAge               int                           `yaml:"max_claim_age" json:"max_claim_age"`
	SurvivorEarlyReductionMax decimal.Decimal               `yaml:"survivor_early_reduction_max" json:"survivor_early_reduction_max"`
	EarningsTest              EarningsTest                  `yaml:"earnings_test" json:"earnings_test"`
	EstimatedTaxRate          decimal.Decimal               `yaml:"estimated_tax_rate" json:"estimated_tax_rate"`
	TaxationThresholds        map[FilingStatus]TaxThreshold `yaml:"taxation_thresholds" json:"taxation_thresholds"`
}

// Policy2026 returns the built-in 2026 benefit rules
func Policy2026() BenefitPolicy {
	return BenefitPolicy{
		Year:                      2026,
		Description:               "2026 survivor benefit rules",
		FullRetirementAge:         67,
		SurvivorMinAge:            60,
		MaxClaimAge:               70,
		SurvivorEarlyReductionMax: decimal.NewFromFloat(0.285),
		EarningsTest: EarningsTest{
			AnnualEarningsLimit: decimal.NewFromInt(23400),
			ReductionRate:       decimal.NewFromFloat(0.50),
		},
		EstimatedTaxRate: decimal.NewFromFloat(0.20),
		TaxationThresholds: map[FilingStatus]TaxThreshold{
			FilingSingle:          {Threshold1: decimal.NewFromInt(25000), Threshold2: decimal.NewFromInt(34000)},
			FilingMarriedJointly:  {Threshold1: decimal.NewFromInt(32000), Threshold2: decimal.NewFromInt(44000)},
			FilingHeadOfHousehold: {Threshold1: decimal.NewFromInt(25000), Threshold2: decimal.NewFromInt(34000)},
		},
	}
}

// ThresholdsFor returns the breakpoints for a filing status; unknown statuses
// use the Single breakpoints.
func (p BenefitPolicy) ThresholdsFor(status FilingStatus) TaxThreshold {
	if t, ok := p.TaxationThresholds[status]; ok {
		return t
	}
	return p.TaxationThresholds[FilingSingle]
}

// Validate checks the policy is internally consistent
func (p BenefitPolicy) Validate() error {
	if p.Year <= 0 {
		return fmt.Errorf("policy year must be positive, got %d", p.Year)
	}
	if p.SurvivorMinAge >= p.FullRetirementAge {
		return fmt.Errorf("policy %d: survivor minimum age %d must be below full retirement age %d", p.Year, p.SurvivorMinAge, p.FullRetirementAge)
	}
	if p.MaxClaimAge < p.FullRetirementAge {
		return fmt.Errorf("policy %d: max claim age %d must be at least full retirement age %d", p.Year, p.MaxClaimAge, p.FullRetirementAge)
	}
	if p.SurvivorEarlyReductionMax.IsNegative() || p.SurvivorEarlyReductionMax.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("policy %d: survivor early reduction must be between 0 and 1", p.Year)
	}
	if p.EarningsTest.AnnualEarningsLimit.IsNegative() || p.EarningsTest.ReductionRate.IsNegative() {
		return fmt.Errorf("policy %d: earnings test values cannot be negative", p.Year)
	}
	if p.EstimatedTaxRate.IsNegative() || p.EstimatedTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("policy %d: estimated tax rate must be between 0 and 1", p.Year)
	}
	if _, ok := p.TaxationThresholds[FilingSingle]; !ok {
		return fmt.Errorf("policy %d: taxation thresholds must include %s", p.Year, FilingSingle)
	}
	for status, t := range p.TaxationThresholds {
		if t.Threshold1.IsNegative() || t.Threshold2.LessThan(t.Threshold1) {
			return fmt.Errorf("policy %d: invalid thresholds for %s", p.Year, status)
		}
	}
	return nil
}

// ClaimAge is a claiming age already checked against a policy's bounds
type ClaimAge struct {
	years int
}

// NewClaimAge validates that years falls within [SurvivorMinAge, MaxClaimAge]
func NewClaimAge(years int, policy BenefitPolicy) (ClaimAge, error) {
	if years < policy.SurvivorMinAge || years > policy.MaxClaimAge {
		return ClaimAge{}, fmt.Errorf("%w: claiming age %d outside %d-%d",
			ErrInvalidParameters, years, policy.SurvivorMinAge, policy.MaxClaimAge)
	}
	return ClaimAge{years: years}, nil
}

// Years returns the claim age in whole years
func (c ClaimAge) Years() int { return c.years }
