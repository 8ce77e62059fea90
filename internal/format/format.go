// Package format renders amounts and dates for display.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency renders amount in the given ISO 4217 currency. INR uses Indian
// grouping and whole units, JPY whole units, everything else US English with
// two fraction digits. Unknown codes fall back to the code itself as prefix.
// Negative amounts put the minus sign before the symbol.
func Currency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)

	tag := language.AmericanEnglish
	digits := 2
	switch code {
	case "INR":
		tag = language.MustParse("en-IN")
		digits = 0
	case "JPY":
		digits = 0
	}

	rounded := amount.Round(int32(digits))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	p := message.NewPrinter(tag)
	value := number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return sign + p.Sprintf("%s %v", code, value)
	}
	return sign + p.Sprintf("%v%v", currency.NarrowSymbol(unit), value)
}

// dateTokens maps the date-fns tokens used in settings to Go layout
// elements, longest first so "MMMM" wins over "MMM".
var dateTokens = []struct{ token, layout string }{
	{"yyyy", "2006"},
	{"MMMM", "January"},
	{"EEEE", "Monday"},
	{"MMM", "Jan"},
	{"EEE", "Mon"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"d", "2"},
}

// Layout converts a date-fns style pattern such as "dd MMM yyyy" into a Go
// time layout. Characters that are not tokens are copied through.
func Layout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, dt := range dateTokens {
			if strings.HasPrefix(pattern[i:], dt.token) {
				b.WriteString(dt.layout)
				i += len(dt.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// Date renders t using a date-fns style pattern. An empty pattern uses
// "MMM dd, yyyy".
func Date(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = "MMM dd, yyyy"
	}
	return t.Format(Layout(pattern))
}
