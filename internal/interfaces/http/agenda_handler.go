package http

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// AgendaHandler maneja citas de agenda (protegido).
type AgendaHandler struct {
	uc *usecase.AgendaUseCase
}

// NewAgendaHandler construye el handler.
func NewAgendaHandler(uc *usecase.AgendaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// Create registra una cita.
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Title == "" || in.StartsAt.IsZero() {
		return badRequest(c, "VALIDATION", "titulo y fecha_inicio son requeridos")
	}
	out, err := h.uc.Create(GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una cita.
func (h *AgendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cita no encontrada")
	}
	return c.JSON(out)
}

// Update actualiza una cita.
func (h *AgendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cita no encontrada")
	}
	return c.JSON(out)
}

// List lista citas del rango [desde, hasta).
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	var from, to *time.Time
	if v := c.Query("desde"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "desde: formato RFC3339")
		}
		from = &t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "hasta: formato RFC3339")
		}
		to = &t
	}
	out, err := h.uc.List(GetTenantID(c), from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una cita.
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cita eliminada"})
}
