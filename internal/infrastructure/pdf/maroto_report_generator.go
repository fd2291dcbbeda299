// Package pdf implementa la exportación de reportes del CRM a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Rango de fechas             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas según el tipo de reporte                   │
//	│    defects:   Código | Tipo | Cantidad | %                  │
//	│    returns:   Código | Producto | Motivo | Estado | Fecha   │
//	│    financial: Código | Concepto | Monto | %                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pares clave/valor en orden alfabético             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator exporta un dto.ReportData ya formateado a PDF.
// No recalcula nada: los montos y porcentajes llegan como strings finales.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, report *dto.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	switch report.Type {
	case dto.ReportTypeReturns:
		m.AddRows(returnsHeaderRow())
		for _, r := range returnsDetailRows(report.Items) {
			m.AddRows(r)
		}
	default:
		// defects y financial comparten forma: código, nombre, valor, porcentaje
		m.AddRows(breakdownHeaderRow(report.Type))
		for _, r := range breakdownDetailRows(report) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range summaryRows(report.Summary) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func headerRow(report *dto.ReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.DateRange, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

// breakdownHeaderRow: cabecera para defects y financial.
func breakdownHeaderRow(reportType string) core.Row {
	valueLabel := "Cantidad"
	nameLabel := "Tipo de defecto"
	if reportType == dto.ReportTypeFinancial {
		valueLabel = "Monto"
		nameLabel = "Concepto"
	}
	return row.New(8).Add(
		headerCell("Código", 2, align.Left),
		headerCell(nameLabel, 5, align.Left),
		headerCell(valueLabel, 3, align.Right),
		headerCell("%", 2, align.Right),
	)
}

// breakdownDetailRows: una fila por grupo (defects) o por línea fija (financial).
func breakdownDetailRows(report *dto.ReportData) []core.Row {
	result := make([]core.Row, 0, len(report.Items))
	for _, it := range report.Items {
		value := it.Amount
		if report.Type == dto.ReportTypeDefects {
			value = fmt.Sprintf("%d", it.Count)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.Percentage, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// returnsHeaderRow: cabecera de la tabla de devoluciones.
func returnsHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Código", 1, align.Left),
		headerCell("Producto", 4, align.Left),
		headerCell("Motivo", 3, align.Left),
		headerCell("Estado", 2, align.Left),
		headerCell("Fecha", 2, align.Right),
	)
}

// returnsDetailRows: una fila por devolución.
func returnsDetailRows(items []dto.ReportItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(it.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Reason, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Status, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Date, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// summaryRows: pares clave/valor del resumen, en orden alfabético para que el
// mismo reporte produzca siempre el mismo documento.
func summaryRows(summary map[string]string) []core.Row {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, k := range keys {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(k, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2,
			})),
			col.New(6).Add(text.New(summary[k], props.Text{Size: 8, Left: 1})),
		))
	}
	return rows
}
