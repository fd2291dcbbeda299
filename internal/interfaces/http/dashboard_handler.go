package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Comercio-api/internal/application/analytics"
)

// DashboardHandler resumen financiero/operativo del CRM.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard para un período
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "day | week | month | quarter | year | custom"  default(month)
// @Param        start_date  query  string  false  "YYYY-MM-DD (solo con period=custom)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (solo con period=custom)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/crm/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	summary, err := h.uc.GetSummary(c.Context(), period, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}
