package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/reports"
)

// ReportPDFGenerator exporta un reporte ya armado a bytes PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportData) ([]byte, error)
}

// ReportHandler generación de reportes del CRM en JSON y PDF.
type ReportHandler struct {
	uc  *reports.ReportUseCase
	pdf ReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, pdf ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Generate godoc
// @Summary      Generar reporte (defects | returns | financial)
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  true   "defects | returns | financial"
// @Param        period      query  string  false  "day | week | month | quarter | year | custom"  default(month)
// @Param        start_date  query  string  false  "YYYY-MM-DD (solo con period=custom)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (solo con period=custom)"
// @Success      200  {object}  dto.ReportData
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/crm/reports [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	report, err := h.uc.GenerateReport(c.Context(), requestFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(report)
}

// GeneratePDF godoc
// @Summary      Exportar reporte a PDF
// @Tags         crm
// @Security     Bearer
// @Produce      application/pdf
// @Param        type        query  string  true   "defects | returns | financial"
// @Param        period      query  string  false  "day | week | month | quarter | year | custom"  default(month)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/crm/reports/pdf [get]
func (h *ReportHandler) GeneratePDF(c *fiber.Ctx) error {
	report, err := h.uc.GenerateReport(c.Context(), requestFromQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	pdfBytes, err := h.pdf.GenerateReportPDF(c.Context(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-%s.pdf"`, report.Type))
	return c.Send(pdfBytes)
}

func requestFromQuery(c *fiber.Ctx) dto.ReportRequest {
	return dto.ReportRequest{
		Type:      c.Query("type"),
		Period:    c.Query("period", "month"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}
