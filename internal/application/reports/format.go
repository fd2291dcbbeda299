package reports

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percentOf devuelve round(part/whole×100) como "N%". whole = 0 produce "0%",
// nunca una división por cero ni "NaN%".
func percentOf(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return "0%"
	}
	return part.Div(whole).Mul(hundred).Round(0).String() + "%"
}

// percentOfInts variante para cantidades enteras (reportes de defectos).
func percentOfInts(part, whole int) string {
	return percentOf(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}

// formatCurrency "$1.234.567" con separador de miles, sin decimales (COP).
// Los negativos llevan el signo antes del símbolo: "-$900".
func formatCurrency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + groupThousands(d.Round(0).StringFixed(0))
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func itoa(n int) string { return strconv.Itoa(n) }
