package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// Stubs de los puertos. ListByRange discrimina período actual vs anterior por
// el rango recibido, comparando contra el momento de la llamada.

type stubOrderRepo struct {
	repository.OrderRepository
	current   []entity.Order
	previous  []entity.Order
	rangeErr  error
	counts    repository.OrderCounts
	countsErr error
}

func (s *stubOrderRepo) ListByRange(_ context.Context, start, end time.Time) ([]entity.Order, error) {
	if s.rangeErr != nil {
		return nil, s.rangeErr
	}
	now := time.Now()
	if !start.After(now) && !end.Before(now) {
		return s.current, nil
	}
	return s.previous, nil
}

func (s *stubOrderRepo) CountsForPeriod(_ context.Context, _, _ time.Time) (repository.OrderCounts, error) {
	return s.counts, s.countsErr
}

type stubReturnRepo struct {
	repository.ReturnRepository
	current  []entity.Return
	previous []entity.Return
	all      []entity.Return
	err      error
}

func (s *stubReturnRepo) ListByRange(_ context.Context, start, end time.Time) ([]entity.Return, error) {
	if s.err != nil {
		return nil, s.err
	}
	now := time.Now()
	if !start.After(now) && !end.Before(now) {
		return s.current, nil
	}
	return s.previous, nil
}

func (s *stubReturnRepo) ListAll(_ context.Context) ([]entity.Return, error) {
	return s.all, s.err
}

type stubDefectRepo struct {
	repository.DefectRepository
	rows []entity.Defect
	err  error
}

func (s *stubDefectRepo) ListAll(_ context.Context) ([]entity.Defect, error) {
	return s.rows, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestGetSummary_AgregadoYTendencias(t *testing.T) {
	now := time.Now()
	// Mitad del mes anterior, sin la normalización de AddDate en fines de mes.
	prevMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -15)
	orders := &stubOrderRepo{
		current: []entity.Order{
			{TotalAmount: decimal.NewFromInt(4000), CreatedAt: now},
			{TotalAmount: decimal.NewFromInt(2000), CreatedAt: now},
		},
		previous: []entity.Order{
			{TotalAmount: decimal.NewFromInt(5000), CreatedAt: prevMonth},
		},
		counts: repository.OrderCounts{NewOrders: 2, ProcessingOrders: 1, TotalOrders: 40},
	}
	returns := &stubReturnRepo{
		all: []entity.Return{{Quantity: 2, CreatedAt: now}},
	}
	defects := &stubDefectRepo{
		rows: []entity.Defect{{Quantity: 4, CreatedAt: now}, {Quantity: 2, CreatedAt: now.AddDate(0, -2, 0)}},
	}
	uc := NewDashboardUseCase(orders, returns, defects, testLogger())

	summary, err := uc.GetSummary(context.Background(), "month", "", "")

	require.NoError(t, err)
	assert.Equal(t, "month", summary.Period)

	assert.True(t, summary.Financial.Income.Equal(decimal.NewFromInt(6000)), "income = %s", summary.Financial.Income)
	assert.True(t, summary.Financial.Expenses.Total.Equal(decimal.NewFromInt(3300)))
	assert.True(t, summary.Financial.Profit.Equal(decimal.NewFromInt(2700)))
	assert.Equal(t, 2, summary.Financial.OrderCount)

	// Pedidos 2 vs 1 → +100; ingreso 6000 vs 5000 → +20.
	assert.True(t, summary.Trends.Orders.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.Trends.Income.Equal(decimal.NewFromInt(20)), "income trend = %s", summary.Trends.Income)
	// AOV 3000 vs 5000 → −40.
	assert.True(t, summary.Trends.AverageOrderValue.Equal(decimal.NewFromInt(-40)))

	assert.Equal(t, 2, summary.Orders.NewOrders)
	assert.Equal(t, 40, summary.Orders.TotalOrders)

	assert.Equal(t, 2, summary.Defects.Total)
	assert.Equal(t, 1, summary.Defects.ThisMonth)
	assert.Equal(t, 3, summary.Defects.Average)

	assert.Equal(t, 1, summary.Returns.Total)
	assert.Equal(t, 1, summary.Returns.ThisMonth)
}

// Un fetch que falla degrada su widget a cero sin tumbar el resumen.
func TestGetSummary_FetchDegradado(t *testing.T) {
	orders := &stubOrderRepo{
		rangeErr:  errors.New("conexión rechazada"),
		countsErr: errors.New("conexión rechazada"),
	}
	returns := &stubReturnRepo{err: errors.New("conexión rechazada")}
	defects := &stubDefectRepo{err: errors.New("conexión rechazada")}
	uc := NewDashboardUseCase(orders, returns, defects, testLogger())

	summary, err := uc.GetSummary(context.Background(), "week", "", "")

	require.NoError(t, err)
	assert.True(t, summary.Financial.Income.IsZero())
	assert.Zero(t, summary.Financial.OrderCount)
	assert.True(t, summary.Trends.Income.IsZero())
	assert.Zero(t, summary.Orders.TotalOrders)
	assert.Zero(t, summary.Defects.Total)
	assert.Zero(t, summary.Returns.Total)
}

func TestGetSummary_PeriodoCustom(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrderRepo{}, &stubReturnRepo{}, &stubDefectRepo{}, testLogger())

	summary, err := uc.GetSummary(context.Background(), "custom", "2025-05-01", "2025-05-31")

	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", summary.DateRange.StartDate)
	assert.Equal(t, "2025-05-31", summary.DateRange.EndDate)
}

// Un token desconocido cae a custom con la ventana de 30 días por defecto.
func TestGetSummary_TokenDesconocido(t *testing.T) {
	uc := NewDashboardUseCase(&stubOrderRepo{}, &stubReturnRepo{}, &stubDefectRepo{}, testLogger())

	summary, err := uc.GetSummary(context.Background(), "bimestre", "", "")

	require.NoError(t, err)
	assert.Equal(t, "custom", summary.Period)
}
