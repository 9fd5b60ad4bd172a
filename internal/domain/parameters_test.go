package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParameters_Validate(t *testing.T) {
	policy := Policy2026()

	tests := []struct {
		name    string
		mutate  func(p *Parameters)
		wantErr string
	}{
		{"defaults are valid", func(p *Parameters) {}, ""},
		{"claim at current age", func(p *Parameters) { p.TargetClaimingAge = p.CurrentAge }, ""},
		{"current age equals life expectancy", func(p *Parameters) { p.LifeExpectancy = p.CurrentAge }, ""},
		{"current age above life expectancy", func(p *Parameters) { p.LifeExpectancy = 60 }, "exceeds life_expectancy"},
		{"negative deceased pia", func(p *Parameters) { p.DeceasedPIA = decimal.NewFromInt(-1) }, "deceased_pia"},
		{"negative earnings", func(p *Parameters) { p.AnnualEarnings = decimal.NewFromInt(-100) }, "annual_earnings"},
		{"negative interest", func(p *Parameters) { p.NontaxableInterest = decimal.NewFromInt(-5) }, "nontaxable_interest"},
		{"claim before survivor minimum", func(p *Parameters) { p.TargetClaimingAge = 58 }, "claiming age 58"},
		{"claim after max claim age", func(p *Parameters) { p.TargetClaimingAge = 72 }, "claiming age 72"},
		{"absurd age", func(p *Parameters) { p.LifeExpectancy = 150 }, "life_expectancy must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate(policy)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
