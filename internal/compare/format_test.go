package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *ComparisonSet {
	return &ComparisonSet{
		BasePolicyYear: 2026,
		InputPath:      "scenario.yaml",
		BaseResult: &ComparisonResult{
			PolicyYear:       2026,
			MonthlyBenefit:   decimal.NewFromInt(2800),
			LifetimeNet:      decimal.NewFromInt(613536),
			EarningsWithheld: decimal.Zero,
			LifetimeTax:      decimal.NewFromInt(125664),
		},
		AlternativeResults: []ComparisonResult{
			{
				PolicyYear:           2025,
				MonthlyBenefit:       decimal.NewFromInt(2800),
				LifetimeNet:          decimal.NewFromInt(600000),
				EarningsWithheld:     decimal.NewFromInt(1000),
				LifetimeTax:          decimal.NewFromInt(125000),
				LifetimeDiffFromBase: decimal.NewFromInt(-13536),
				LifetimePctFromBase:  decimal.NewFromFloat(-2.21),
				WithheldDiffFromBase: decimal.NewFromInt(1000),
				TaxDiffFromBase:      decimal.NewFromInt(-664),
			},
		},
		Recommendations: []string{"Lowest Taxes: 2025 rules saves $664 in estimated tax"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(sampleSet())

	assert.Contains(t, out, "SURVIVOR BENEFIT POLICY COMPARISON")
	assert.Contains(t, out, "Base Policy: 2026")
	assert.Contains(t, out, "2026 rules (base)")
	assert.Contains(t, out, "$613.5K")
	assert.Contains(t, out, "Lifetime Net:     -$13.5K (-2.2%)")
	assert.Contains(t, out, "• Lowest Taxes")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(sampleSet())
	assert.Equal(t, "Base: 2026 | 2025: -$13.5K", out)
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleSet())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Policy Year", rows[0][0])
	assert.Equal(t, []string{"2026", "base"}, rows[1][:2])
	assert.Equal(t, "-13536.00", rows[2][7])
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := (&JSONFormatter{Pretty: true}).Format(sampleSet())
	require.NoError(t, err)
	assert.Contains(t, out, "$664")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(2026), decoded["basePolicyYear"])
}
