// Package format renders money and timestamps for user-facing text.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurorabank/lumen/internal/model"
)

var symbols = map[model.Currency]string{
	model.CurrencyUSD: "$",
	model.CurrencyMXN: "$",
	model.CurrencyEUR: "€",
}

// Currency renders an amount with its currency symbol, thousands separators,
// and two decimals: "-$1,640.50".
func Currency(amount decimal.Decimal, code model.Currency) string {
	symbol, ok := symbols[code]
	if !ok {
		symbol = string(code) + " "
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + symbol + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// DateTime renders a timestamp the way the dashboard shows activity dates:
// "25 may 10:15".
func DateTime(t time.Time) string {
	return fmt.Sprintf("%02d %s %02d:%02d", t.Day(), shortMonths[t.Month()-1], t.Hour(), t.Minute())
}
