package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comercio-api/internal/domain/analytics"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Previo en cero: 100 si hay valor actual, 0 si ambos son cero.
// Es el caso especial que evita el NaN/Infinity de la división por cero.
func TestTrend_PrevioCero(t *testing.T) {
	assert.True(t, dec(100).Equal(analytics.Trend(dec(50), decimal.Zero)),
		"crecer desde cero debe reportar 100%%")
	assert.True(t, decimal.Zero.Equal(analytics.Trend(decimal.Zero, decimal.Zero)),
		"cero contra cero debe reportar 0%%")
}

// Simetría: +20% y -20% para los valores espejo 120/100 y 80/100.
func TestTrend_Simetria(t *testing.T) {
	assert.True(t, dec(20).Equal(analytics.Trend(dec(120), dec(100))))
	assert.True(t, dec(-20).Equal(analytics.Trend(dec(80), dec(100))))
}

// Redondeo a un decimal: 1 sobre 3 = 33.333...% → -66.7% de caída.
func TestTrend_RedondeoUnDecimal(t *testing.T) {
	got := analytics.Trend(dec(1), dec(3))
	assert.True(t, dec(-66.7).Equal(got), "esperado -66.7, obtenido %s", got)
}

// Conveniencia para contadores enteros.
func TestTrendFromInts(t *testing.T) {
	assert.True(t, dec(50).Equal(analytics.TrendFromInts(3, 2)))
	assert.True(t, dec(100).Equal(analytics.TrendFromInts(5, 0)))
	assert.True(t, decimal.Zero.Equal(analytics.TrendFromInts(0, 0)))
}
