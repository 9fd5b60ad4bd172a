package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenario = `
name: "Widow early claim"
description: "Claim the survivor benefit at 62 while still working"
parameters:
  deceased_pia: 2800
  own_pia: 2100
  current_age: 62
  target_claiming_age: 62
  life_expectancy: 88
  annual_earnings: 45000
  nontaxable_interest: 1200
  filing_status: "Head of Household"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	scenario, err := NewInputParser().LoadFromFile("nonexistent.yaml")

	assert.Error(t, err)
	assert.Nil(t, scenario)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	scenario, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, scenario)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	path := writeFile(t, "scenario.yaml", validScenario)

	scenario, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Widow early claim", scenario.Name)
	assert.Equal(t, domain.FilingHeadOfHousehold, scenario.Parameters.FilingStatus)
	assert.True(t, scenario.Parameters.DeceasedPIA.Equal(decimal.NewFromInt(2800)))
	assert.Equal(t, 62, scenario.Parameters.TargetClaimingAge)
	assert.Zero(t, scenario.PolicyYear)
}

func TestInputParser_DefaultsFilingStatus(t *testing.T) {
	path := writeFile(t, "scenario.yaml", "parameters:\n  deceased_pia: 1500\n  current_age: 60\n  target_claiming_age: 60\n  life_expectancy: 80\n")

	scenario, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FilingSingle, scenario.Parameters.FilingStatus)
}

func TestInputParser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing pia", "parameters:\n  current_age: 62\n  target_claiming_age: 62\n  life_expectancy: 88\n", "deceased_pia is required"},
		{"bad filing status", "parameters:\n  deceased_pia: 1000\n  filing_status: widowed\n", "failed to parse YAML"},
		{"claim too late", "parameters:\n  deceased_pia: 1000\n  current_age: 62\n  target_claiming_age: 71\n  life_expectancy: 88\n", "claiming age 71"},
		{"unknown policy", "policy_year: 1980\nparameters:\n  deceased_pia: 1000\n  current_age: 62\n  target_claiming_age: 62\n  life_expectancy: 88\n", "unknown benefit policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(writeFile(t, "scenario.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_LoadFromFileWithPolicies(t *testing.T) {
	policyPath := writeFile(t, "policy.yaml", "policies:\n  - year: 2025\n    extends: 2026\n    max_claim_age: 72\n")
	scenarioPath := writeFile(t, "scenario.yaml", "policy_year: 2025\nparameters:\n  deceased_pia: 1000\n  current_age: 62\n  target_claiming_age: 71\n  life_expectancy: 88\n")

	scenario, registry, err := NewInputParser().LoadFromFileWithPolicies(scenarioPath, policyPath)
	require.NoError(t, err)
	assert.Equal(t, 2025, scenario.PolicyYear)
	assert.Equal(t, []int{2025, 2026}, registry.Years())

	_, _, err = NewInputParser().LoadFromFileWithPolicies(scenarioPath, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	// without the 2025 policy the same scenario is rejected
	_, err = NewInputParser().LoadFromFile(scenarioPath)
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}
