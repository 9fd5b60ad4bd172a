package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrNoPolicies is returned when a comparison is requested with nothing to compare
var ErrNoPolicies = errors.New("no policies to compare")

// CompareEngine runs one scenario under several benefit policies
type CompareEngine struct {
	CalcEngine *calculation.Engine
	// MaxParallel bounds concurrent simulations; zero means unbounded
	MaxParallel int
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{CalcEngine: calcEngine}
}

// ComparePolicies simulates params under every policy concurrently. The first
// policy is the base the others are measured against; results keep input order.
func (ce *CompareEngine) ComparePolicies(ctx context.Context, params domain.Parameters, policies []domain.BenefitPolicy) (*ComparisonSet, error) {
	if len(policies) == 0 {
		return nil, ErrNoPolicies
	}

	results := make([]ComparisonResult, len(policies))
	g, gctx := errgroup.WithContext(ctx)
	if ce.MaxParallel > 0 {
		g.SetLimit(ce.MaxParallel)
	}

	for i, policy := range policies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ce.CalcEngine.Simulate(params, policy)
			if err != nil {
				return fmt.Errorf("failed to simulate policy %d: %w", policy.Year, err)
			}
			results[i] = CalculateMetrics(policy, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	base := results[0]
	alternatives := make([]ComparisonResult, 0, len(results)-1)
	for _, alt := range results[1:] {
		alternatives = append(alternatives, CalculateComparison(alt, base))
	}

	compSet := &ComparisonSet{
		BasePolicyYear:     base.PolicyYear,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}
