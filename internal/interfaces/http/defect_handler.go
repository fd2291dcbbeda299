package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
)

// DefectHandler registro de defectos de bodega (solo CRM).
type DefectHandler struct {
	uc *usecase.DefectUseCase
}

// NewDefectHandler construye el handler.
func NewDefectHandler(uc *usecase.DefectUseCase) *DefectHandler {
	return &DefectHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar unidades defectuosas
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDefectRequest  true  "Datos del defecto"
// @Success      201   {object}  dto.DefectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/defects [post]
func (h *DefectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDefectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar defectos registrados
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DefectListResponse
// @Router       /api/crm/defects [get]
func (h *DefectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
