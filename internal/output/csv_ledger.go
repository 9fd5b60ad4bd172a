package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVLedgerExporter writes one row per ledger year.
type CSVLedgerExporter struct{}

func (c CSVLedgerExporter) Name() string { return "csv" }

func (c CSVLedgerExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Year", "GrossBenefit", "EarningsWithheld", "TaxablePortion", "EstimatedTax", "NetBenefit", "CumulativeNet"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range report.Result.YearlyData {
		row := []string{
			strconv.Itoa(rec.Age),
			strconv.Itoa(rec.Year),
			rec.GrossBenefit.StringFixed(2),
			rec.EarningsWithheld.StringFixed(2),
			rec.TaxablePortion.StringFixed(2),
			rec.EstimatedTax.StringFixed(2),
			rec.NetBenefit.StringFixed(2),
			rec.CumulativeNet.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
