package contract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as "445,000.00".
func FormatMoney(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}

// FormatClosingDate turns YYYY-MM-DD into MM/DD/YYYY. Anything else is
// returned unchanged.
func FormatClosingDate(raw string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return t.Format("01/02/2006")
}
