package export

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDateBR renders an ISO date as dd/mm/yyyy, the format used throughout
// the product surface. Unparseable input is passed through unchanged.
func FormatDateBR(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// formatRate renders a percentage rate without trailing zeros (2 -> "2",
// 2.5 -> "2.5").
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
