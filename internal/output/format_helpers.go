package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDollars rounds to whole dollars with thousands separators, e.g. "$27,888".
func FormatDollars(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	if whole < 0 {
		return printer.Sprintf("-$%d", -whole)
	}
	return printer.Sprintf("$%d", whole)
}

// FormatMoney is FormatDollars with cents, e.g. "$2,323.33".
func FormatMoney(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// FormatThousands renders an axis label such as "$614k".
func FormatThousands(amount decimal.Decimal) string {
	return printer.Sprintf("$%dk", amount.Div(decimal.NewFromInt(1000)).Round(0).IntPart())
}
