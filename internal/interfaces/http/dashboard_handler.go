package http

import (
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler expone el resumen agregado para la pantalla principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve valor de inventario, alertas, pedidos pendientes y producción.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
