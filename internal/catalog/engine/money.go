package engine

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

var oneHundred = decimal.NewFromInt(100)

// FormatUSD renders an amount of cents as localized US currency text,
// e.g. 123450 -> "$1,234.50".
func FormatUSD(cents int64) string {
	amount, _ := decimal.NewFromInt(cents).Div(oneHundred).Float64()
	return usdPrinter.Sprintf("$%.2f", amount)
}
