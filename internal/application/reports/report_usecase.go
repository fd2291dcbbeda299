package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/period"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// ReportUseCase genera los reportes del CRM sobre un período resuelto.
//
// Misma política de fallos que el dashboard: una familia de datos que no se
// pueda leer se degrada a vacía con un warn y el reporte sale con esa sección
// en cero. El único error fatal es un tipo de reporte desconocido.
type ReportUseCase struct {
	orderRepo  repository.OrderRepository
	returnRepo repository.ReturnRepository
	defectRepo repository.DefectRepository
	log        *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	orderRepo repository.OrderRepository,
	returnRepo repository.ReturnRepository,
	defectRepo repository.DefectRepository,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo, returnRepo: returnRepo, defectRepo: defectRepo, log: log}
}

// GenerateReport valida el tipo, resuelve el período y arma el reporte.
// El tipo se valida ANTES de tocar la base: un tipo desconocido devuelve
// domain.ErrUnknownReportType sin ninguna lectura.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportData, error) {
	switch req.Type {
	case dto.ReportTypeDefects, dto.ReportTypeReturns, dto.ReportTypeFinancial:
	default:
		return nil, domain.ErrUnknownReportType
	}

	now := time.Now()
	tok := period.ParseToken(req.Period)
	r := period.Resolve(tok, now, parseExplicitRange(req.StartDate, req.EndDate, now.Location()))

	switch req.Type {
	case dto.ReportTypeDefects:
		return buildDefectsReport(uc.fetchDefects(ctx, r), r), nil
	case dto.ReportTypeReturns:
		return buildReturnsReport(uc.fetchReturns(ctx, r), r), nil
	default:
		orders, err := uc.orderRepo.ListByRange(ctx, r.Start, r.End)
		uc.warnIf("pedidos del período", err)
		if err != nil {
			orders = nil
		}
		return buildFinancialReport(orders, uc.fetchReturns(ctx, r), uc.fetchDefects(ctx, r), r), nil
	}
}

func (uc *ReportUseCase) fetchDefects(ctx context.Context, r period.Range) []entity.Defect {
	rows, err := uc.defectRepo.ListByRange(ctx, r.Start, r.End)
	uc.warnIf("defectos del período", err)
	if err != nil {
		return nil
	}
	return rows
}

func (uc *ReportUseCase) fetchReturns(ctx context.Context, r period.Range) []entity.Return {
	rows, err := uc.returnRepo.ListByRange(ctx, r.Start, r.End)
	uc.warnIf("devoluciones del período", err)
	if err != nil {
		return nil
	}
	return rows
}

func (uc *ReportUseCase) warnIf(what string, err error) {
	if err != nil {
		uc.log.Warn().Err(err).Str("fuente", what).Msg("reporte: fetch degradado a vacío")
	}
}

// parseExplicitRange arma el rango custom desde strings YYYY-MM-DD; cualquier
// fecha ausente o inválida devuelve nil y el resolver aplica su default.
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
	end = end.Add(24*time.Hour - time.Millisecond)
	return &period.Range{Start: start, End: end}
}
