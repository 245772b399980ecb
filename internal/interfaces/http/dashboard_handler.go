package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/furnistore-api/internal/application/analytics"
)

// DashboardHandler resumen del back-office.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas del día y del mes, caja del mes, stock bajo y top 5 productos.
// Las fechas se calculan en el servidor.
//
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
