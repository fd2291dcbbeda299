package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/period"
)

func rangoMayo2025() period.Range {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return period.Range{Start: start, End: time.Date(2025, 5, 31, 23, 59, 59, 999000000, time.UTC)}
}

func enMayo(day int) time.Time {
	return time.Date(2025, 5, day, 10, 0, 0, 0, time.UTC)
}

func TestBuildDefectsReport_AgrupaPorTipo(t *testing.T) {
	r := rangoMayo2025()
	defects := []entity.Defect{
		{Type: entity.DefectTypeProduction, Quantity: 5, CreatedAt: enMayo(3)},
		{Type: entity.DefectTypeProduction, Quantity: 3, CreatedAt: enMayo(10)},
		{Type: entity.DefectTypeMaterial, Quantity: 2, CreatedAt: enMayo(20)},
	}

	report := buildDefectsReport(defects, r)

	assert.Equal(t, dto.ReportTypeDefects, report.Type)
	require.Len(t, report.Items, 2)

	assert.Equal(t, "D01", report.Items[0].Code)
	assert.Equal(t, "Defecto de producción", report.Items[0].Name)
	assert.Equal(t, 8, report.Items[0].Count)
	assert.Equal(t, "80%", report.Items[0].Percentage)

	assert.Equal(t, "D02", report.Items[1].Code)
	assert.Equal(t, "Defecto de material", report.Items[1].Name)
	assert.Equal(t, 2, report.Items[1].Count)
	assert.Equal(t, "20%", report.Items[1].Percentage)

	assert.Equal(t, "10", report.Summary["totalDefects"])
	assert.Equal(t, "2", report.Summary["uniqueTypes"])
	assert.Equal(t, "3", report.Summary["recordCount"])
}

func TestBuildDefectsReport_SinDefectos(t *testing.T) {
	report := buildDefectsReport(nil, rangoMayo2025())

	assert.Empty(t, report.Items)
	assert.Equal(t, "0", report.Summary["totalDefects"])
}

// Cantidades en cero no producen divisiones por cero: el porcentaje sale "0%".
func TestBuildDefectsReport_TotalCero(t *testing.T) {
	r := rangoMayo2025()
	defects := []entity.Defect{
		{Type: entity.DefectTypeOther, Quantity: 0, CreatedAt: enMayo(5)},
	}

	report := buildDefectsReport(defects, r)

	require.Len(t, report.Items, 1)
	assert.Equal(t, "0%", report.Items[0].Percentage)
}

func TestBuildDefectsReport_FiltraFueraDelRango(t *testing.T) {
	r := rangoMayo2025()
	defects := []entity.Defect{
		{Type: entity.DefectTypeProduction, Quantity: 4, CreatedAt: enMayo(15)},
		{Type: entity.DefectTypeProduction, Quantity: 9, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Type: entity.DefectTypeMaterial, Quantity: 7}, // CreatedAt en cero: se salta
	}

	report := buildDefectsReport(defects, r)

	require.Len(t, report.Items, 1)
	assert.Equal(t, 4, report.Items[0].Count)
	assert.Equal(t, "100%", report.Items[0].Percentage)
}

func TestBuildReturnsReport_FilasYResumen(t *testing.T) {
	r := rangoMayo2025()
	returns := []entity.Return{
		{ProductName: "Botas de cuero", Reason: "Talla incorrecta", Status: entity.ReturnStatusPending, Quantity: 1, CreatedAt: enMayo(2)},
		{ProductName: "Correa clásica", Reason: "Defecto de costura", Status: entity.ReturnStatusCompleted, Quantity: 2, CreatedAt: enMayo(9)},
		{ProductName: "Botas de cuero", Reason: "No le gustó", Status: entity.ReturnStatusPending, Quantity: 1, CreatedAt: enMayo(25)},
	}

	report := buildReturnsReport(returns, r)

	require.Len(t, report.Items, 3)
	assert.Equal(t, "R01", report.Items[0].Code)
	assert.Equal(t, "Botas de cuero", report.Items[0].ProductName)
	assert.Equal(t, "Pendiente", report.Items[0].Status)
	assert.Equal(t, "02/05/2025", report.Items[0].Date)

	assert.Equal(t, "2", report.Summary["Pendiente"])
	assert.Equal(t, "1", report.Summary["Completada"])
	assert.Equal(t, "3", report.Summary["totalReturns"])
	assert.Equal(t, "4", report.Summary["totalQuantity"])
}

func TestBuildReturnsReport_SinDevoluciones(t *testing.T) {
	report := buildReturnsReport(nil, rangoMayo2025())

	assert.NotNil(t, report.Items)
	assert.Empty(t, report.Items)
	assert.Equal(t, "0", report.Summary["totalReturns"])
}

func TestBuildFinancialReport_LineasFijas(t *testing.T) {
	r := rangoMayo2025()
	orders := []entity.Order{
		{TotalAmount: decimal.NewFromInt(4000), CreatedAt: enMayo(1)},
		{TotalAmount: decimal.NewFromInt(2000), CreatedAt: enMayo(15)},
	}
	returns := []entity.Return{
		{Quantity: 1, Status: entity.ReturnStatusPending, CreatedAt: enMayo(20)},
	}
	defects := []entity.Defect{
		{Type: entity.DefectTypeProduction, Quantity: 1, CreatedAt: enMayo(22)},
	}

	report := buildFinancialReport(orders, returns, defects, r)

	// AOV = 6000/2 = 3000; devoluciones = 3000, defectos = 3000,
	// gastos estimados = 6000×0.55 = 3300 ≤ 6000: sin línea de otros gastos.
	require.Len(t, report.Items, 3)

	assert.Equal(t, "F01", report.Items[0].Code)
	assert.Equal(t, "$6.000", report.Items[0].Amount)
	assert.Equal(t, "100%", report.Items[0].Percentage)

	assert.Equal(t, "F02", report.Items[1].Code)
	assert.Equal(t, "-$3.000", report.Items[1].Amount)
	assert.Equal(t, "50%", report.Items[1].Percentage)

	assert.Equal(t, "F03", report.Items[2].Code)
	assert.Equal(t, "-$3.000", report.Items[2].Amount)

	assert.Equal(t, "$6.000", report.Summary["totalIncome"])
	assert.Equal(t, "$3.300", report.Summary["totalExpenses"])
	assert.Equal(t, "$2.700", report.Summary["netProfit"])
	assert.Equal(t, "2", report.Summary["orderCount"])
	assert.Equal(t, "1", report.Summary["returnCount"])
	assert.Equal(t, "1", report.Summary["defectCount"])
}

// Cuando el gasto estimado supera lo atribuido a devoluciones y defectos,
// aparece la línea de otros gastos con el resto.
func TestBuildFinancialReport_OtrosGastos(t *testing.T) {
	r := rangoMayo2025()
	orders := []entity.Order{
		{TotalAmount: decimal.NewFromInt(10000), CreatedAt: enMayo(5)},
	}

	report := buildFinancialReport(orders, nil, nil, r)

	// Gastos estimados 5500, atribuido 0: otros gastos = 5500.
	require.Len(t, report.Items, 4)
	assert.Equal(t, "F04", report.Items[3].Code)
	assert.Equal(t, "Otros gastos", report.Items[3].Name)
	assert.Equal(t, "-$5.500", report.Items[3].Amount)
	assert.Equal(t, "55%", report.Items[3].Percentage)
}

func TestBuildFinancialReport_SinIngresos(t *testing.T) {
	report := buildFinancialReport(nil, nil, nil, rangoMayo2025())

	require.Len(t, report.Items, 3)
	for _, item := range report.Items {
		assert.Equal(t, "$0", item.Amount)
		assert.Equal(t, "0%", item.Percentage)
	}
	assert.Equal(t, "$0", report.Summary["netProfit"])
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", formatCurrency(decimal.Zero))
	assert.Equal(t, "$950", formatCurrency(decimal.NewFromInt(950)))
	assert.Equal(t, "$25.000", formatCurrency(decimal.NewFromInt(25000)))
	assert.Equal(t, "$1.234.567", formatCurrency(decimal.NewFromInt(1234567)))
	assert.Equal(t, "-$900", formatCurrency(decimal.NewFromInt(-900)))
	// Los decimales se redondean antes de agrupar.
	assert.Equal(t, "$1.000", formatCurrency(decimal.NewFromFloat(999.50)))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, "25%", percentOf(decimal.NewFromInt(1), decimal.NewFromInt(4)))
	assert.Equal(t, "0%", percentOf(decimal.NewFromInt(5), decimal.Zero))
	// 1/3 redondea al entero más cercano.
	assert.Equal(t, "33%", percentOfInts(1, 3))
	assert.Equal(t, "67%", percentOfInts(2, 3))
}
