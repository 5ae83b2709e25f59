package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatMoney renders a value with two decimals and thousands separators: 1234.5 -> "1,234.50".
func formatMoney(v float64) string {
	d := decimal.NewFromFloat(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, decPart, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + group(intPart) + "." + decPart
}

func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// formatRate renders the training collection rate, which is kept to four places.
func formatRate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4) + "%"
}

func formatInt(v int) string {
	if v < 0 {
		return "-" + group(strconv.Itoa(-v))
	}
	return group(strconv.Itoa(v))
}

// A Caser is not safe for concurrent use, so titleCase builds one per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func group(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
