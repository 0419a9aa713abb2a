package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxCurrencyDigits caps fractional digits shown for any currency.
const maxCurrencyDigits = 2

var printer = message.NewPrinter(language.English)

// FormatPercent renders n with a fixed number of decimals and a percent sign.
// Non-finite values render as "0%".
func FormatPercent(n float64, decimals int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0%"
	}
	return fmt.Sprintf("%.*f%%", decimals, n)
}

// FormatDrift renders a drift input the way it is shown next to the slider:
// "+10%", "-2.5%", "0%".
func FormatDrift(d float64) string {
	sign := ""
	if d > 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(d, 'f', -1, 64) + "%"
}

// FormatCurrency renders amount in the given ISO currency, rounded to the
// currency's standard precision and grouped by thousands. Non-finite amounts
// render as "-".
func FormatCurrency(amount float64, iso, symbol string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "-"
	}
	scale := maxCurrencyDigits
	if unit, err := currency.ParseISO(iso); err == nil {
		if s, _ := currency.Standard.Rounding(unit); s < scale {
			scale = s
		}
	}
	if symbol == "" {
		symbol = iso + " "
	}

	rounded, _ := decimal.NewFromFloat(amount).Round(int32(scale)).Float64()
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + symbol + printer.Sprint(number.Decimal(rounded, number.Scale(scale)))
}
