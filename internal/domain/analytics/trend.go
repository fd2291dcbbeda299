package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Trend devuelve el delta porcentual entre el valor del período actual y el del
// período anterior, redondeado a 1 decimal.
//
// Función total: el caso previous = 0 está definido explícitamente (100 si hay
// crecimiento desde cero, 0 si ambos son cero), así que nunca escapa un NaN ni
// un infinito hacia el dashboard.
func Trend(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}

// TrendFromInts conveniencia para contadores (pedidos, devoluciones).
func TrendFromInts(current, previous int) decimal.Decimal {
	return Trend(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
