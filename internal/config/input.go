package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPolicyFile is picked up from the working directory when no policy file is given
const DefaultPolicyFile = "policy.yaml"

// Scenario is one claiming scenario read from disk
type Scenario struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	PolicyYear  int               `yaml:"policy_year,omitempty" json:"policyYear,omitempty"`
	Parameters  domain.Parameters `yaml:"parameters" json:"parameters"`
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it against the
// built-in policies
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	scenario, _, err := ip.LoadFromFileWithPolicies(filename, "")
	return scenario, err
}

// LoadFromFileWithPolicies loads a scenario and merges policyFile, when not
// empty, into the registry used to validate it
func (ip *InputParser) LoadFromFileWithPolicies(filename, policyFile string) (*Scenario, *PolicyRegistry, error) {
	registry := NewPolicyRegistry()
	if policyFile != "" {
		if err := registry.LoadFile(policyFile); err != nil {
			return nil, nil, err
		}
	}

	scenario, err := ip.parseFile(filename)
	if err != nil {
		return nil, nil, err
	}

	if err := ip.ValidateScenario(scenario, registry); err != nil {
		return nil, nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return scenario, registry, nil
}

func (ip *InputParser) parseFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if scenario.Parameters.FilingStatus == "" {
		scenario.Parameters.FilingStatus = domain.FilingSingle
	}
	return &scenario, nil
}

// ValidateScenario checks the scenario's policy exists and its parameters fit that policy
func (ip *InputParser) ValidateScenario(scenario *Scenario, registry *PolicyRegistry) error {
	policy, err := registry.Resolve(scenario.PolicyYear)
	if err != nil {
		return err
	}
	if scenario.Parameters.DeceasedPIA.IsZero() {
		return fmt.Errorf("parameters.deceased_pia is required")
	}
	return scenario.Parameters.Validate(policy)
}
