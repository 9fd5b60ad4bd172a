package calculation

import (
	"fmt"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine projects survivor benefits year by year. It holds no per-run state and
// is safe for concurrent use once configured.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new projection engine with a no-op logger
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Simulate validates params against policy and folds over every age from
// CurrentAge through LifeExpectancy inclusive.
func (e *Engine) Simulate(params domain.Parameters, policy domain.BenefitPolicy) (*domain.SimulationResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benefit policy: %w", err)
	}
	if err := params.Validate(policy); err != nil {
		return nil, err
	}
	claim, err := domain.NewClaimAge(params.TargetClaimingAge, policy)
	if err != nil {
		return nil, err
	}

	monthly := ReduceForEarlyClaim(params.DeceasedPIA, claim, policy)
	firstYear := startYear(params.StartYear)

	e.Logger.Debugf("simulating policy %d: claim at %d, monthly benefit %s, ages %d-%d",
		policy.Year, params.TargetClaimingAge, monthly.StringFixed(2), params.CurrentAge, params.LifeExpectancy)

	records := make([]domain.YearRecord, 0, params.LifeExpectancy-params.CurrentAge+1)
	cumulative := decimal.Zero
	penaltyTotal := decimal.Zero

	for age := params.CurrentAge; age <= params.LifeExpectancy; age++ {
		isClaiming := age >= params.TargetClaimingAge

		gross := decimal.Zero
		penalty := decimal.Zero
		if isClaiming {
			gross = monthly.Mul(twelveMonths)
			penalty = EarningsWithholding(params.AnnualEarnings, age, policy)
		}

		netAfterPenalty := decimal.Max(decimal.Zero, gross.Sub(penalty))
		taxable := TaxableBenefit(netAfterPenalty, params.AnnualEarnings, params.NontaxableInterest, params.FilingStatus, policy)
		tax := taxable.Mul(policy.EstimatedTaxRate)
		net := netAfterPenalty.Sub(tax)

		cumulative = cumulative.Add(net)
		penaltyTotal = penaltyTotal.Add(penalty)

		records = append(records, domain.YearRecord{
			Age:              age,
			Year:             firstYear + (age - params.CurrentAge),
			GrossBenefit:     gross,
			EarningsWithheld: penalty,
			TaxablePortion:   taxable,
			EstimatedTax:     tax,
			NetBenefit:       net,
			CumulativeNet:    cumulative,
		})

		if penalty.GreaterThan(gross) && isClaiming {
			e.Logger.Debugf("age %d: earnings test withholding %s exceeds gross %s", age, penalty.StringFixed(2), gross.StringFixed(2))
		}
	}

	exposure := TaxExposure(params.AnnualEarnings, params.NontaxableInterest, monthly, params.FilingStatus, policy)

	result := &domain.SimulationResult{
		PolicyYear:           policy.Year,
		MonthlyBenefit:       monthly,
		TotalLifetimeValue:   cumulative,
		YearlyData:           records,
		TaxExposure:          exposure,
		EarningsPenaltyTotal: penaltyTotal,
	}

	e.Logger.Infof("projection complete: lifetime net %s, earnings withheld %s, tax exposure %s",
		cumulative.StringFixed(2), penaltyTotal.StringFixed(2), exposure.StringFixed(1))
	return result, nil
}
