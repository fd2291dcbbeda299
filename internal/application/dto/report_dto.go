package dto

// Tipos de reporte aceptados por el generador.
const (
	ReportTypeDefects   = "defects"
	ReportTypeReturns   = "returns"
	ReportTypeFinancial = "financial"
)

// ReportRequest parámetros del generador de reportes.
// StartDate/EndDate (YYYY-MM-DD) solo aplican con Period = "custom".
type ReportRequest struct {
	Type      string `query:"type"`
	Period    string `query:"period"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// ReportItem una fila del desglose del reporte. Los campos usados dependen del
// tipo: defects usa Name/Count/Percentage, returns usa ProductName/Reason/
// Status/Date, financial usa Name/Amount/Percentage.
type ReportItem struct {
	Code        string `json:"code"`
	Name        string `json:"name,omitempty"`
	Count       int    `json:"count,omitempty"`
	Percentage  string `json:"percentage,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status,omitempty"`
	Date        string `json:"date,omitempty"`
	Amount      string `json:"amount,omitempty"`
}

// ReportData forma final de un reporte: lo consume el visor en pantalla y el
// exportador PDF. Todos los valores ya vienen formateados para presentación.
type ReportData struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	DateRange string            `json:"date_range"`
	Items     []ReportItem      `json:"items"`
	Summary   map[string]string `json:"summary"`
}
