package http

import (
	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// ConfigurationHandler maneja ajustes por tenant (protegido).
type ConfigurationHandler struct {
	uc *usecase.ConfigurationUseCase
}

// NewConfigurationHandler construye el handler.
func NewConfigurationHandler(uc *usecase.ConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{uc: uc}
}

// Upsert inserta o reemplaza el valor de (tipo, clave).
func (h *ConfigurationHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertConfigurationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Type == "" || in.Key == "" {
		return badRequest(c, "VALIDATION", "config_type y key son requeridos")
	}
	out, err := h.uc.Upsert(GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get obtiene el valor de (tipo, clave).
func (h *ConfigurationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetTenantID(c), c.Params("type"), c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "configuración no encontrada")
	}
	return c.JSON(out)
}

// List lista configuraciones, opcionalmente por tipo.
func (h *ConfigurationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetTenantID(c), c.Query("config_type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la clave (tipo, clave).
func (h *ConfigurationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetTenantID(c), c.Params("type"), c.Params("key")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "configuración eliminada"})
}
