package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing policies
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SURVIVOR BENEFIT POLICY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Policy: %d\n", compSet.BasePolicyYear))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Scenario: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Policy",
		numWidth, "Monthly",
		numWidth, "Lifetime Net",
		numWidth, "Withheld",
		numWidth, "Est. Tax"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label()))
			sb.WriteString(fmt.Sprintf("  Lifetime Net:     %s$%s (%s%%)\n",
				tf.deltaSymbol(alt.LifetimeDiffFromBase),
				tf.formatDecimal(alt.LifetimeDiffFromBase.Abs()),
				alt.LifetimePctFromBase.StringFixed(1)))

			if !alt.WithheldDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Withholding:      %s$%s\n",
					tf.deltaSymbol(alt.WithheldDiffFromBase),
					tf.formatDecimal(alt.WithheldDiffFromBase.Abs())))
			}

			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s$%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					tf.formatDecimal(alt.TaxDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single policy row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Label()
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "$"+result.MonthlyBenefit.StringFixed(2),
		numWidth, "$"+tf.formatDecimal(result.LifetimeNet),
		numWidth, "$"+tf.formatDecimal(result.EarningsWithheld),
		numWidth, "$"+tf.formatDecimal(result.LifetimeTax))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns + for increases and - for decreases
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line summary of lifetime deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %d | ", compSet.BasePolicyYear))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.LifetimeDiffFromBase.IsPositive() {
			change = fmt.Sprintf("+$%s", tf.formatDecimal(alt.LifetimeDiffFromBase))
		} else if alt.LifetimeDiffFromBase.IsNegative() {
			change = fmt.Sprintf("-$%s", tf.formatDecimal(alt.LifetimeDiffFromBase.Abs()))
		}
		sb.WriteString(fmt.Sprintf("%d: %s", alt.PolicyYear, change))
	}

	return sb.String()
}
