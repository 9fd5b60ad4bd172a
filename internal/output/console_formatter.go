package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders a plain text report with the yearly ledger.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Parameters
	r := report.Result

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintf(&buf, "SURVIVOR BENEFIT PROJECTION: %s\n", report.ScenarioName)
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintf(&buf, "Policy:                  %d (%s)\n", report.Policy.Year, report.Policy.Description)
	fmt.Fprintf(&buf, "Deceased PIA:            %s/mo\n", FormatDollars(p.DeceasedPIA))
	fmt.Fprintf(&buf, "Own PIA:                 %s/mo\n", FormatDollars(p.OwnPIA))
	fmt.Fprintf(&buf, "Ages:                    current %d, claim %d, horizon %d\n", p.CurrentAge, p.TargetClaimingAge, p.LifeExpectancy)
	fmt.Fprintf(&buf, "Earned Wages:            %s/yr\n", FormatDollars(p.AnnualEarnings))
	fmt.Fprintf(&buf, "Nontaxable Interest:     %s/yr\n", FormatDollars(p.NontaxableInterest))
	fmt.Fprintf(&buf, "Filing Status:           %s\n", p.FilingStatus)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Claim-Adjusted Benefit:  %s/mo\n", FormatMoney(r.MonthlyBenefit))
	fmt.Fprintf(&buf, "Monthly Net (Est.):      %s at age %d\n", FormatDollars(r.MonthlyNetAt(p.TargetClaimingAge)), p.TargetClaimingAge)
	fmt.Fprintf(&buf, "Lifetime Wealth:         %s\n", FormatDollars(r.TotalLifetimeValue))
	fmt.Fprintf(&buf, "Earnings Withheld:       %s\n", FormatDollars(r.EarningsPenaltyTotal))
	fmt.Fprintf(&buf, "Tax Exposure:            %s/100 (%s)\n", r.TaxExposure.StringFixed(0), r.ExposureZone())
	breakEven := "not computed"
	if r.BreakEvenAge != nil {
		breakEven = fmt.Sprintf("%d", *r.BreakEvenAge)
	}
	fmt.Fprintf(&buf, "Break-Even Age:          %s\n", breakEven)
	fmt.Fprintln(&buf)

	age, steps := WaterfallSteps(r)
	fmt.Fprintf(&buf, "MONTHLY BENEFIT BREAKDOWN (age %d)\n", age)
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	for _, s := range steps {
		sign := " "
		if s.Negative {
			sign = "-"
		}
		fmt.Fprintf(&buf, "%-18s %s%14s\n", s.Label, sign, s.Amount)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY LEDGER")
	fmt.Fprintln(&buf, strings.Repeat("-", 81))
	fmt.Fprintf(&buf, "%-4s %-5s %12s %11s %11s %10s %11s %12s\n",
		"Age", "Year", "Gross", "Withheld", "Taxable", "Est. Tax", "Net", "Cumulative")
	for _, rec := range r.YearlyData {
		fmt.Fprintf(&buf, "%-4d %-5d %12s %11s %11s %10s %11s %12s\n",
			rec.Age, rec.Year,
			FormatDollars(rec.GrossBenefit),
			FormatDollars(rec.EarningsWithheld),
			FormatDollars(rec.TaxablePortion),
			FormatDollars(rec.EstimatedTax),
			FormatDollars(rec.NetBenefit),
			FormatDollars(rec.CumulativeNet))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, ExposureSentence(r))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "STRATEGY TIPS")
	for _, tip := range StrategyTips(report.Policy) {
		fmt.Fprintf(&buf, "• %s\n", tip)
	}

	return buf.Bytes(), nil
}
