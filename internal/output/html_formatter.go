package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatMoney,
	"dollars": FormatDollars,
	"pct":     FormatPercentage,
	"fixed0":  func(d decimal.Decimal) string { return d.StringFixed(0) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	age, steps := WaterfallSteps(report.Result)
	data := struct {
		*Report
		MonthlyNet   string
		Zone         string
		ExposureText string
		BreakdownAge int
		Breakdown    []BreakdownStep
		Tips         []string
	}{
		Report:       report,
		MonthlyNet:   FormatDollars(report.Result.MonthlyNetAt(report.Parameters.TargetClaimingAge)),
		Zone:         string(report.Result.ExposureZone()),
		ExposureText: ExposureSentence(report.Result),
		BreakdownAge: age,
		Breakdown:    steps,
		Tips:         StrategyTips(report.Policy),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
