package pages

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", time.RFC1123}

// FormatDate renders an API date as "Jan 2, 2006". Unparseable input is
// returned unchanged.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// FormatMoney renders an amount as "$1,234" or "$1,234.50".
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	whole, frac := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	out := "$" + b.String()
	if frac != 0 {
		out += "." + strconv.FormatInt(frac/10, 10) + strconv.FormatInt(frac%10, 10)
	}
	if neg {
		out = "-" + out
	}
	return out
}
