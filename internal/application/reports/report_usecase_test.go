package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// Stubs mínimos de los puertos: devuelven lo configurado y cuentan llamadas.

type stubOrderRepo struct {
	repository.OrderRepository
	rows  []entity.Order
	err   error
	calls int
}

func (s *stubOrderRepo) ListByRange(_ context.Context, _, _ time.Time) ([]entity.Order, error) {
	s.calls++
	return s.rows, s.err
}

type stubReturnRepo struct {
	repository.ReturnRepository
	rows  []entity.Return
	err   error
	calls int
}

func (s *stubReturnRepo) ListByRange(_ context.Context, _, _ time.Time) ([]entity.Return, error) {
	s.calls++
	return s.rows, s.err
}

type stubDefectRepo struct {
	repository.DefectRepository
	rows  []entity.Defect
	err   error
	calls int
}

func (s *stubDefectRepo) ListByRange(_ context.Context, _, _ time.Time) ([]entity.Defect, error) {
	s.calls++
	return s.rows, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestGenerateReport_TipoDesconocido(t *testing.T) {
	orders := &stubOrderRepo{}
	returns := &stubReturnRepo{}
	defects := &stubDefectRepo{}
	uc := NewReportUseCase(orders, returns, defects, testLogger())

	report, err := uc.GenerateReport(context.Background(), dto.ReportRequest{Type: "ventas-diarias", Period: "month"})

	require.ErrorIs(t, err, domain.ErrUnknownReportType)
	assert.Nil(t, report)
	// El tipo se valida antes de leer nada.
	assert.Zero(t, orders.calls)
	assert.Zero(t, returns.calls)
	assert.Zero(t, defects.calls)
}

func TestGenerateReport_Defectos(t *testing.T) {
	now := time.Now()
	defects := &stubDefectRepo{rows: []entity.Defect{
		{Type: entity.DefectTypeProduction, Quantity: 8, CreatedAt: now},
		{Type: entity.DefectTypeMaterial, Quantity: 2, CreatedAt: now},
	}}
	uc := NewReportUseCase(&stubOrderRepo{}, &stubReturnRepo{}, defects, testLogger())

	report, err := uc.GenerateReport(context.Background(), dto.ReportRequest{Type: dto.ReportTypeDefects, Period: "month"})

	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "80%", report.Items[0].Percentage)
	assert.Equal(t, "20%", report.Items[1].Percentage)
	assert.Equal(t, "10", report.Summary["totalDefects"])
}

// Una familia de datos que falla degrada a vacío; el reporte sale igual.
func TestGenerateReport_FinancieroConFetchDegradado(t *testing.T) {
	orders := &stubOrderRepo{err: errors.New("conexión rechazada")}
	returns := &stubReturnRepo{}
	defects := &stubDefectRepo{}
	uc := NewReportUseCase(orders, returns, defects, testLogger())

	report, err := uc.GenerateReport(context.Background(), dto.ReportRequest{Type: dto.ReportTypeFinancial, Period: "week"})

	require.NoError(t, err)
	assert.Equal(t, "$0", report.Summary["totalIncome"])
	assert.Equal(t, "0", report.Summary["orderCount"])
}

func TestGenerateReport_PeriodoCustomExplicito(t *testing.T) {
	returns := &stubReturnRepo{rows: []entity.Return{
		{ProductName: "Botas", Status: entity.ReturnStatusPending, Quantity: 1,
			CreatedAt: time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)},
	}}
	uc := NewReportUseCase(&stubOrderRepo{}, returns, &stubDefectRepo{}, testLogger())

	report, err := uc.GenerateReport(context.Background(), dto.ReportRequest{
		Type:      dto.ReportTypeReturns,
		Period:    "custom",
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "01/05/2025 a 31/05/2025", report.DateRange)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "Botas", report.Items[0].ProductName)
}
