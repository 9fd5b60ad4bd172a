package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPolicy is returned when a policy year is not registered
var ErrUnknownPolicy = errors.New("unknown benefit policy")

// PolicyRegistry holds the benefit policies available to a run, keyed by year
type PolicyRegistry struct {
	mu       sync.RWMutex
	policies map[int]domain.BenefitPolicy
}

// NewPolicyRegistry creates a registry seeded with the built-in policies
func NewPolicyRegistry() *PolicyRegistry {
	r := &PolicyRegistry{policies: make(map[int]domain.BenefitPolicy)}
	builtin := domain.Policy2026()
	r.policies[builtin.Year] = builtin
	return r
}

// Register validates and adds a policy, replacing any policy with the same year
func (r *PolicyRegistry) Register(policy domain.BenefitPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[policy.Year] = clonePolicy(policy)
	return nil
}

// Get returns the policy for year
func (r *PolicyRegistry) Get(year int) (domain.BenefitPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[year]
	if !ok {
		return domain.BenefitPolicy{}, fmt.Errorf("%w: %d (available: %v)", ErrUnknownPolicy, year, r.yearsLocked())
	}
	return clonePolicy(p), nil
}

// Resolve returns the policy for year, or the latest registered policy when year is zero
func (r *PolicyRegistry) Resolve(year int) (domain.BenefitPolicy, error) {
	if year == 0 {
		return r.Latest(), nil
	}
	return r.Get(year)
}

// Latest returns the policy with the highest year
func (r *PolicyRegistry) Latest() domain.BenefitPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	years := r.yearsLocked()
	return clonePolicy(r.policies[years[len(years)-1]])
}

// Years lists the registered policy years in ascending order
func (r *PolicyRegistry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.yearsLocked()
}

// All returns every registered policy in ascending year order
func (r *PolicyRegistry) All() []domain.BenefitPolicy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BenefitPolicy, 0, len(r.policies))
	for _, y := range r.yearsLocked() {
		out = append(out, clonePolicy(r.policies[y]))
	}
	return out
}

func (r *PolicyRegistry) yearsLocked() []int {
	return slices.Sorted(maps.Keys(r.policies))
}

// policyFile is the on-disk layout of a policy file. Each entry may name an
// already registered year in "extends"; fields it omits keep that policy's values.
type policyFile struct {
	Policies []yaml.Node `yaml:"policies"`
}

type policyHeader struct {
	Year    int `yaml:"year"`
	Extends int `yaml:"extends"`
}

// LoadFile merges the policies in a YAML file into the registry
func (r *PolicyRegistry) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read policy file %s: %w", filename, err)
	}
	return r.LoadYAML(data)
}

// LoadYAML merges the policies in a YAML document into the registry
func (r *PolicyRegistry) LoadYAML(data []byte) error {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if len(file.Policies) == 0 {
		return fmt.Errorf("policy file defines no policies")
	}

	for i := range file.Policies {
		node := &file.Policies[i]

		var header policyHeader
		if err := node.Decode(&header); err != nil {
			return fmt.Errorf("policy %d: %w", i, err)
		}

		var policy domain.BenefitPolicy
		if header.Extends != 0 {
			base, err := r.Get(header.Extends)
			if err != nil {
				return fmt.Errorf("policy %d extends %d: %w", header.Year, header.Extends, err)
			}
			policy = base
		}
		if err := node.Decode(&policy); err != nil {
			return fmt.Errorf("policy %d: %w", header.Year, err)
		}
		if err := r.Register(policy); err != nil {
			return fmt.Errorf("policy %d validation failed: %w", header.Year, err)
		}
	}
	return nil
}

// clonePolicy copies the thresholds map so registry entries never share it
func clonePolicy(p domain.BenefitPolicy) domain.BenefitPolicy {
	p.TaxationThresholds = maps.Clone(p.TaxationThresholds)
	return p
}
