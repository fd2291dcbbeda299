// Package reports proyecta registros crudos y agregados en las tres formas de
// reporte del CRM (defectos, devoluciones, financiero). Es la única capa que
// convierte números a strings de presentación (moneda, porcentajes, fechas);
// el motor de agregación se mantiene puramente numérico.
package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/analytics"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/period"
)

const dateLayout = "02/01/2006"

func formatDateRange(r period.Range) string {
	return fmt.Sprintf("%s a %s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// buildDefectsReport agrupa los defectos del período por tipo.
// Cada grupo es una línea {Dnn, etiqueta, unidades, % del total de unidades};
// los grupos conservan el orden de primera aparición para salida determinista.
func buildDefectsReport(defects []entity.Defect, r period.Range) *dto.ReportData {
	type group struct {
		defectType string
		count      int
	}
	var groups []*group
	byType := make(map[string]*group)
	totalQty := 0
	records := 0

	for _, d := range defects {
		if d.CreatedAt.IsZero() || !r.Contains(d.CreatedAt) {
			continue
		}
		records++
		totalQty += d.Quantity
		g, ok := byType[d.Type]
		if !ok {
			g = &group{defectType: d.Type}
			byType[d.Type] = g
			groups = append(groups, g)
		}
		g.count += d.Quantity
	}

	items := make([]dto.ReportItem, 0, len(groups))
	for i, g := range groups {
		items = append(items, dto.ReportItem{
			Code:       fmt.Sprintf("D%02d", i+1),
			Name:       entity.DefectTypeLabel(g.defectType),
			Count:      g.count,
			Percentage: percentOfInts(g.count, totalQty),
		})
	}

	return &dto.ReportData{
		Type:      dto.ReportTypeDefects,
		Title:     "Reporte de defectos",
		DateRange: formatDateRange(r),
		Items:     items,
		Summary: map[string]string{
			"totalDefects": itoa(totalQty),
			"uniqueTypes":  itoa(len(groups)),
			"recordCount":  itoa(records),
		},
	}
}

// buildReturnsReport una línea por devolución del período, más un resumen con
// la ocurrencia de cada estado localizado.
func buildReturnsReport(returns []entity.Return, r period.Range) *dto.ReportData {
	var items []dto.ReportItem
	statusCounts := make(map[string]int)
	totalQty := 0

	for _, ret := range returns {
		if ret.CreatedAt.IsZero() || !r.Contains(ret.CreatedAt) {
			continue
		}
		label := entity.ReturnStatusLabel(ret.Status)
		statusCounts[label]++
		totalQty += ret.Quantity
		items = append(items, dto.ReportItem{
			Code:        fmt.Sprintf("R%02d", len(items)+1),
			ProductName: ret.ProductName,
			Reason:      ret.Reason,
			Status:      label,
			Date:        ret.CreatedAt.Format(dateLayout),
		})
	}

	summary := make(map[string]string, len(statusCounts)+2)
	for label, n := range statusCounts {
		summary[label] = itoa(n)
	}
	summary["totalReturns"] = itoa(len(items))
	summary["totalQuantity"] = itoa(totalQty)

	if items == nil {
		items = []dto.ReportItem{}
	}
	return &dto.ReportData{
		Type:      dto.ReportTypeReturns,
		Title:     "Reporte de devoluciones",
		DateRange: formatDateRange(r),
		Items:     items,
		Summary:   summary,
	}
}

// buildFinancialReport líneas en orden fijo: ingresos (base 100%), gasto por
// devoluciones, gasto por defectos y, solo si el gasto total estimado supera a
// esos dos, una línea de "otros gastos" con el resto.
//
// Tanto devoluciones como defectos se valoran con el proxy de valor promedio de
// pedido del período (unidades × AOV), no con precios reales de línea.
func buildFinancialReport(orders []entity.Order, returns []entity.Return, defects []entity.Defect, r period.Range) *dto.ReportData {
	agg := analytics.AggregateFinancials(orders, returns, r)

	var defectUnits int64
	defectCount := 0
	for _, d := range defects {
		if d.CreatedAt.IsZero() || !r.Contains(d.CreatedAt) {
			continue
		}
		defectCount++
		defectUnits += int64(d.Quantity)
	}
	divisor := int64(agg.OrderCount)
	if divisor < 1 {
		divisor = 1
	}
	averageOrderValue := agg.Income.Div(decimal.NewFromInt(divisor))
	defectsExpense := averageOrderValue.Mul(decimal.NewFromInt(defectUnits)).Round(2)

	items := []dto.ReportItem{
		{
			Code:       "F01",
			Name:       "Ingresos",
			Amount:     formatCurrency(agg.Income),
			Percentage: percentOf(agg.Income, agg.Income),
		},
		{
			Code:       "F02",
			Name:       "Gasto por devoluciones",
			Amount:     formatCurrency(agg.ReturnAmount.Neg()),
			Percentage: percentOf(agg.ReturnAmount, agg.Income),
		},
		{
			Code:       "F03",
			Name:       "Gasto por defectos",
			Amount:     formatCurrency(defectsExpense.Neg()),
			Percentage: percentOf(defectsExpense, agg.Income),
		},
	}

	attributed := agg.ReturnAmount.Add(defectsExpense)
	if agg.Expenses.Total.GreaterThan(attributed) {
		other := agg.Expenses.Total.Sub(attributed)
		items = append(items, dto.ReportItem{
			Code:       "F04",
			Name:       "Otros gastos",
			Amount:     formatCurrency(other.Neg()),
			Percentage: percentOf(other, agg.Income),
		})
	}

	return &dto.ReportData{
		Type:      dto.ReportTypeFinancial,
		Title:     "Reporte financiero",
		DateRange: formatDateRange(r),
		Items:     items,
		Summary: map[string]string{
			"totalIncome":   formatCurrency(agg.Income),
			"totalExpenses": formatCurrency(agg.Expenses.Total),
			"netProfit":     formatCurrency(agg.Profit),
			"orderCount":    itoa(agg.OrderCount),
			"returnCount":   itoa(agg.ReturnCount),
			"defectCount":   itoa(defectCount),
		},
	}
}
