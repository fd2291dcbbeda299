// Package analytics contiene el motor de agregación financiera/operativa:
// funciones puras sobre arreglos ya cargados en memoria, sin I/O ni reintentos.
// Toda conversión a strings de presentación (moneda, porcentajes) vive en el
// formateador de reportes, nunca aquí.
package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/period"
)

// Ratios de gasto estimados sobre el ingreso del período. Son estimaciones de
// negocio, no medidas: cada bucket es un porcentaje fijo del ingreso.
var (
	ratioLogistics = decimal.NewFromFloat(0.15)
	ratioMarketing = decimal.NewFromFloat(0.12)
	ratioSalaries  = decimal.NewFromFloat(0.20)
	ratioRent      = decimal.NewFromFloat(0.08)
)

// ExpenseBreakdown buckets de gasto estimado del período.
// Invariante: Total es exactamente la suma de los cuatro buckets ya redondeados.
type ExpenseBreakdown struct {
	Logistics decimal.Decimal
	Marketing decimal.Decimal
	Salaries  decimal.Decimal
	Rent      decimal.Decimal
	Total     decimal.Decimal
}

// PeriodAggregate resumen derivado de un período. Se calcula bajo demanda y se
// descarta con la respuesta; nunca se persiste ni se cachea.
// Invariante: Profit = Income − Expenses.Total.
type PeriodAggregate struct {
	Period       period.Range
	Income       decimal.Decimal
	Expenses     ExpenseBreakdown
	Profit       decimal.Decimal
	OrderCount   int
	ReturnCount  int
	ReturnAmount decimal.Decimal
}

// AggregateFinancials filtra pedidos y devoluciones por fecha de creación dentro
// del rango (extremos incluidos) y produce el agregado del período.
//
// ReturnAmount usa un proxy de valor promedio de pedido: unidades devueltas ×
// (ingreso / max(1, pedidos del período)). NO es una valoración por línea real;
// es la regla de negocio documentada y se conserva tal cual.
//
// Registros con CreatedAt en cero se saltan: un dato malformado nunca tumba la
// agregación.
func AggregateFinancials(orders []entity.Order, returns []entity.Return, r period.Range) PeriodAggregate {
	agg := PeriodAggregate{Period: r, Income: decimal.Zero, ReturnAmount: decimal.Zero}

	for _, o := range orders {
		if o.CreatedAt.IsZero() || !r.Contains(o.CreatedAt) {
			continue
		}
		agg.OrderCount++
		agg.Income = agg.Income.Add(o.TotalAmount)
	}

	agg.Expenses = estimateExpenses(agg.Income)
	agg.Profit = agg.Income.Sub(agg.Expenses.Total)

	var returnedUnits int64
	for _, ret := range returns {
		if ret.CreatedAt.IsZero() || !r.Contains(ret.CreatedAt) {
			continue
		}
		agg.ReturnCount++
		returnedUnits += int64(ret.Quantity)
	}

	// Valor promedio de pedido como proxy; max(1, n) evita la división por cero
	// cuando el período no tiene pedidos.
	divisor := int64(agg.OrderCount)
	if divisor < 1 {
		divisor = 1
	}
	averageOrderValue := agg.Income.Div(decimal.NewFromInt(divisor))
	agg.ReturnAmount = averageOrderValue.Mul(decimal.NewFromInt(returnedUnits)).Round(2)

	return agg
}

// estimateExpenses aplica los ratios fijos al ingreso. Cada bucket se redondea a
// 2 decimales y el total es la suma de los buckets ya redondeados, de modo que
// la identidad total = Σ buckets se cumple sin deriva de redondeo.
func estimateExpenses(income decimal.Decimal) ExpenseBreakdown {
	e := ExpenseBreakdown{
		Logistics: income.Mul(ratioLogistics).Round(2),
		Marketing: income.Mul(ratioMarketing).Round(2),
		Salaries:  income.Mul(ratioSalaries).Round(2),
		Rent:      income.Mul(ratioRent).Round(2),
	}
	e.Total = e.Logistics.Add(e.Marketing).Add(e.Salaries).Add(e.Rent)
	return e
}

// Stats conteos simples para los widgets de defectos y devoluciones.
type Stats struct {
	Total     int // registros totales
	ThisMonth int // creados en el mes calendario de now
	Average   int // cantidad promedio por registro, redondeada al entero más cercano
}

// AggregateDefects calcula los conteos del widget de defectos. ThisMonth se
// evalúa contra el mes calendario de now (reloj de pared), no contra el período
// solicitado al dashboard.
func AggregateDefects(defects []entity.Defect, now time.Time) Stats {
	var s Stats
	var totalQty int
	for _, d := range defects {
		if d.CreatedAt.IsZero() {
			continue
		}
		s.Total++
		totalQty += d.Quantity
		if sameMonth(d.CreatedAt, now) {
			s.ThisMonth++
		}
	}
	s.Average = roundedAverage(totalQty, s.Total)
	return s
}

// AggregateReturnsStats misma forma y semántica de "mes actual" que los defectos.
func AggregateReturnsStats(returns []entity.Return, now time.Time) Stats {
	var s Stats
	var totalQty int
	for _, ret := range returns {
		if ret.CreatedAt.IsZero() {
			continue
		}
		s.Total++
		totalQty += ret.Quantity
		if sameMonth(ret.CreatedAt, now) {
			s.ThisMonth++
		}
	}
	s.Average = roundedAverage(totalQty, s.Total)
	return s
}

func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// roundedAverage protege la división por cero: sin registros el promedio es 0.
func roundedAverage(totalQty, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(totalQty) / float64(count)))
}
