package dto

import "github.com/shopspring/decimal"

// ExpensesDTO buckets de gasto estimado del período.
type ExpensesDTO struct {
	Logistics decimal.Decimal `json:"logistics"`
	Marketing decimal.Decimal `json:"marketing"`
	Salaries  decimal.Decimal `json:"salaries"`
	Rent      decimal.Decimal `json:"rent"`
	Total     decimal.Decimal `json:"total"`
}

// FinancialSummaryDTO agregado financiero del período solicitado.
type FinancialSummaryDTO struct {
	Income       decimal.Decimal `json:"income"`
	Expenses     ExpensesDTO     `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	OrderCount   int             `json:"order_count"`
	ReturnCount  int             `json:"return_count"`
	ReturnAmount decimal.Decimal `json:"return_amount"`
}

// TrendsDTO deltas porcentuales contra el período inmediatamente anterior
// de la misma forma (redondeados a 1 decimal).
type TrendsDTO struct {
	Orders            decimal.Decimal `json:"orders"`
	Returns           decimal.Decimal `json:"returns"`
	Income            decimal.Decimal `json:"income"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// StatsDTO widget de conteos (defectos o devoluciones).
// ThisMonth siempre es el mes calendario actual, independiente del período solicitado.
type StatsDTO struct {
	Total     int `json:"total"`
	ThisMonth int `json:"this_month"`
	Average   int `json:"average"`
}

// OrderCountsDTO encabezado de pedidos del dashboard.
type OrderCountsDTO struct {
	NewOrders        int `json:"new_orders"`
	ProcessingOrders int `json:"processing_orders"`
	TotalOrders      int `json:"total_orders"`
}

// DashboardSummaryDTO respuesta de GET /api/crm/dashboard.
type DashboardSummaryDTO struct {
	Period    string              `json:"period"` // token solicitado
	DateRange PeriodDTO           `json:"date_range"`
	Financial FinancialSummaryDTO `json:"financial"`
	Trends    TrendsDTO           `json:"trends"`
	Orders    OrderCountsDTO      `json:"orders"`
	Defects   StatsDTO            `json:"defects"`
	Returns   StatsDTO            `json:"returns"`
}
