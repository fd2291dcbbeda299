// Package analytics contiene el caso de uso del dashboard del CRM: resuelve el
// período solicitado, trae los datos crudos en paralelo y arma KPIs + tendencias.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	domanalytics "github.com/jhoicas/Comercio-api/internal/domain/analytics"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/period"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// DashboardUseCase arma el resumen del CRM para un período simbólico.
//
// Política de fallos: cada fetch que falle se degrada a su valor vacío/cero y
// se registra en warn; el dashboard nunca se cae completo por una familia de
// datos indisponible (el widget correspondiente muestra cero).
type DashboardUseCase struct {
	orderRepo  repository.OrderRepository
	returnRepo repository.ReturnRepository
	defectRepo repository.DefectRepository
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	returnRepo repository.ReturnRepository,
	defectRepo repository.DefectRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, returnRepo: returnRepo, defectRepo: defectRepo, log: log}
}

// GetSummary calcula el resumen para el token de período dado. startDate/endDate
// (YYYY-MM-DD) solo aplican con period=custom; si faltan, custom cae a la
// ventana de 30 días.
//
// Siete lecturas independientes se lanzan en paralelo y todas se esperan antes
// de agregar: pedidos y devoluciones del período actual y del anterior (para
// tendencias), todas las devoluciones y defectos (widgets de stats) y los
// conteos pre-agregados de pedidos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, token, startDate, endDate string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	tok := period.ParseToken(token)
	current := period.Resolve(tok, now, parseExplicitRange(startDate, endDate, now.Location()))
	previous := period.Previous(tok, now)

	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type returnsResult struct {
		rows []entity.Return
		err  error
	}
	type defectsResult struct {
		rows []entity.Defect
		err  error
	}
	type countsResult struct {
		counts repository.OrderCounts
		err    error
	}

	currOrdersCh := make(chan ordersResult, 1)
	prevOrdersCh := make(chan ordersResult, 1)
	currReturnsCh := make(chan returnsResult, 1)
	prevReturnsCh := make(chan returnsResult, 1)
	allReturnsCh := make(chan returnsResult, 1)
	defectsCh := make(chan defectsResult, 1)
	countsCh := make(chan countsResult, 1)

	go func() {
		rows, err := uc.orderRepo.ListByRange(ctx, current.Start, current.End)
		currOrdersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.orderRepo.ListByRange(ctx, previous.Start, previous.End)
		prevOrdersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.returnRepo.ListByRange(ctx, current.Start, current.End)
		currReturnsCh <- returnsResult{rows, err}
	}()
	go func() {
		rows, err := uc.returnRepo.ListByRange(ctx, previous.Start, previous.End)
		prevReturnsCh <- returnsResult{rows, err}
	}()
	go func() {
		rows, err := uc.returnRepo.ListAll(ctx)
		allReturnsCh <- returnsResult{rows, err}
	}()
	go func() {
		rows, err := uc.defectRepo.ListAll(ctx)
		defectsCh <- defectsResult{rows, err}
	}()
	go func() {
		counts, err := uc.orderRepo.CountsForPeriod(ctx, current.Start, current.End)
		countsCh <- countsResult{counts, err}
	}()

	currOrders := <-currOrdersCh
	prevOrders := <-prevOrdersCh
	currReturns := <-currReturnsCh
	prevReturns := <-prevReturnsCh
	allReturns := <-allReturnsCh
	defects := <-defectsCh
	counts := <-countsCh

	uc.warnIf("pedidos del período", currOrders.err)
	uc.warnIf("pedidos del período anterior", prevOrders.err)
	uc.warnIf("devoluciones del período", currReturns.err)
	uc.warnIf("devoluciones del período anterior", prevReturns.err)
	uc.warnIf("devoluciones (stats)", allReturns.err)
	uc.warnIf("defectos", defects.err)
	uc.warnIf("conteos de pedidos", counts.err)

	currAgg := domanalytics.AggregateFinancials(safeOrders(currOrders.rows, currOrders.err), safeReturns(currReturns.rows, currReturns.err), current)
	prevAgg := domanalytics.AggregateFinancials(safeOrders(prevOrders.rows, prevOrders.err), safeReturns(prevReturns.rows, prevReturns.err), previous)

	defectStats := domanalytics.AggregateDefects(safeDefects(defects.rows, defects.err), now)
	returnStats := domanalytics.AggregateReturnsStats(safeReturns(allReturns.rows, allReturns.err), now)

	orderCounts := counts.counts
	if counts.err != nil {
		orderCounts = repository.OrderCounts{}
	}

	return &dto.DashboardSummaryDTO{
		Period: string(tok),
		DateRange: dto.PeriodDTO{
			StartDate: current.Start.Format("2006-01-02"),
			EndDate:   current.End.Format("2006-01-02"),
		},
		Financial: dto.FinancialSummaryDTO{
			Income: currAgg.Income,
			Expenses: dto.ExpensesDTO{
				Logistics: currAgg.Expenses.Logistics,
				Marketing: currAgg.Expenses.Marketing,
				Salaries:  currAgg.Expenses.Salaries,
				Rent:      currAgg.Expenses.Rent,
				Total:     currAgg.Expenses.Total,
			},
			Profit:       currAgg.Profit,
			OrderCount:   currAgg.OrderCount,
			ReturnCount:  currAgg.ReturnCount,
			ReturnAmount: currAgg.ReturnAmount,
		},
		Trends: dto.TrendsDTO{
			Orders:            domanalytics.TrendFromInts(currAgg.OrderCount, prevAgg.OrderCount),
			Returns:           domanalytics.TrendFromInts(currAgg.ReturnCount, prevAgg.ReturnCount),
			Income:            domanalytics.Trend(currAgg.Income, prevAgg.Income),
			AverageOrderValue: domanalytics.Trend(averageOrderValue(currAgg), averageOrderValue(prevAgg)),
		},
		Orders: dto.OrderCountsDTO{
			NewOrders:        orderCounts.NewOrders,
			ProcessingOrders: orderCounts.ProcessingOrders,
			TotalOrders:      orderCounts.TotalOrders,
		},
		Defects: dto.StatsDTO{Total: defectStats.Total, ThisMonth: defectStats.ThisMonth, Average: defectStats.Average},
		Returns: dto.StatsDTO{Total: returnStats.Total, ThisMonth: returnStats.ThisMonth, Average: returnStats.Average},
	}, nil
}

func (uc *DashboardUseCase) warnIf(what string, err error) {
	if err != nil {
		uc.log.Warn().Err(err).Str("fuente", what).Msg("dashboard: fetch degradado a vacío")
	}
}

// averageOrderValue ingreso / pedidos, 0 si el período no tiene pedidos.
func averageOrderValue(agg domanalytics.PeriodAggregate) decimal.Decimal {
	if agg.OrderCount == 0 {
		return decimal.Zero
	}
	return agg.Income.Div(decimal.NewFromInt(int64(agg.OrderCount)))
}

// parseExplicitRange arma el rango custom desde strings YYYY-MM-DD.
// Cualquier fecha ausente o inválida devuelve nil y el resolver aplica su default.
func parseExplicitRange(startStr, endStr string, loc *time.Location) *period.Range {
	if startStr == "" || endStr == "" {
		return nil
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, loc)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, loc)
	if err != nil {
		return nil
	}
	// end inclusivo hasta el final del día
	end = end.Add(24*time.Hour - time.Millisecond)
	return &period.Range{Start: start, End: end}
}

func safeOrders(rows []entity.Order, err error) []entity.Order {
	if err != nil {
		return nil
	}
	return rows
}

func safeReturns(rows []entity.Return, err error) []entity.Return {
	if err != nil {
		return nil
	}
	return rows
}

func safeDefects(rows []entity.Defect, err error) []entity.Defect {
	if err != nil {
		return nil
	}
	return rows
}
