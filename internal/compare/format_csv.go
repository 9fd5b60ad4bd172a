package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Policy Year",
		"Type",
		"Monthly Benefit",
		"Lifetime Net",
		"Earnings Withheld",
		"Lifetime Tax",
		"Tax Exposure",
		"Lifetime Diff from Base",
		"Lifetime % Change",
		"Withheld Diff from Base",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, kind string) []string {
	return []string{
		strconv.Itoa(result.PolicyYear),
		kind,
		result.MonthlyBenefit.StringFixed(2),
		result.LifetimeNet.StringFixed(2),
		result.EarningsWithheld.StringFixed(2),
		result.LifetimeTax.StringFixed(2),
		result.TaxExposure.StringFixed(1),
		result.LifetimeDiffFromBase.StringFixed(2),
		result.LifetimePctFromBase.StringFixed(2),
		result.WithheldDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
