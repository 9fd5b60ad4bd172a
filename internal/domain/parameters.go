package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidParameters is wrapped by every parameter validation failure
var ErrInvalidParameters = errors.New("invalid parameters")

// maxAge bounds every age field
const maxAge = 120

// Parameters describes one survivor claiming scenario
type Parameters struct {
	DeceasedPIA        decimal.Decimal `yaml:"deceased_pia" json:"deceasedPia"`
	OwnPIA             decimal.Decimal `yaml:"own_pia" json:"ownPia"` // advisory prompt only
	CurrentAge         int             `yaml:"current_age" json:"currentAge"`
	TargetClaimingAge  int             `yaml:"target_claiming_age" json:"targetClaimingAge"`
	LifeExpectancy     int             `yaml:"life_expectancy" json:"lifeExpectancy"`
	AnnualEarnings     decimal.Decimal `yaml:"annual_earnings" json:"annualEarnings"`
	NontaxableInterest decimal.Decimal `yaml:"nontaxable_interest" json:"nontaxableInterest"`
	FilingStatus       FilingStatus    `yaml:"filing_status" json:"filingStatus"`
	// StartYear is the calendar year of the first ledger row; zero means the current year
	StartYear int `yaml:"start_year,omitempty" json:"startYear,omitempty"`
}

// DefaultParameters returns the sample widow scenario used by the TUI on startup
func DefaultParameters() Parameters {
	return Parameters{
		DeceasedPIA:        decimal.NewFromInt(2800),
		OwnPIA:             decimal.NewFromInt(2100),
		CurrentAge:         62,
		TargetClaimingAge:  67,
		LifeExpectancy:     88,
		AnnualEarnings:     decimal.NewFromInt(45000),
		NontaxableInterest: decimal.NewFromInt(1200),
		FilingStatus:       FilingSingle,
	}
}

// Validate returns the first violation found, wrapped in ErrInvalidParameters
func (p Parameters) Validate(policy BenefitPolicy) error {
	money := []struct {
		name  string
		value decimal.Decimal
	}{
		{"deceased_pia", p.DeceasedPIA},
		{"own_pia", p.OwnPIA},
		{"annual_earnings", p.AnnualEarnings},
		{"nontaxable_interest", p.NontaxableInterest},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", ErrInvalidParameters, m.name, m.value.String())
		}
	}

	ages := []struct {
		name  string
		value int
	}{
		{"current_age", p.CurrentAge},
		{"target_claiming_age", p.TargetClaimingAge},
		{"life_expectancy", p.LifeExpectancy},
	}
	for _, a := range ages {
		if a.value < 0 || a.value > maxAge {
			return fmt.Errorf("%w: %s must be between 0 and %d, got %d", ErrInvalidParameters, a.name, maxAge, a.value)
		}
	}

	if p.CurrentAge > p.LifeExpectancy {
		return fmt.Errorf("%w: current_age %d exceeds life_expectancy %d", ErrInvalidParameters, p.CurrentAge, p.LifeExpectancy)
	}
	if _, err := NewClaimAge(p.TargetClaimingAge, policy); err != nil {
		return err
	}
	if p.StartYear < 0 {
		return fmt.Errorf("%w: start_year cannot be negative, got %d", ErrInvalidParameters, p.StartYear)
	}
	return nil
}
