package http

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/gofiber/fiber/v2"
)

// InventoryHandler maneja catálogo, movimientos y reportes de inventario (protegido).
type InventoryHandler struct {
	items   *usecase.ItemUseCase
	adjust  *inventory.AdjustStockUseCase
	reports *inventory.ReportsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *usecase.ItemUseCase, adjust *inventory.AdjustStockUseCase, reports *inventory.ReportsUseCase) *InventoryHandler {
	return &InventoryHandler{items: items, adjust: adjust, reports: reports}
}

// CreateItem da de alta un material en el catálogo.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.Category == "" {
		return badRequest(c, "VALIDATION", "item_type y nombre son requeridos")
	}
	out, err := h.items.Create(GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetItem obtiene un material por ID.
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.items.GetByID(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "material no encontrado")
	}
	return c.JSON(out)
}

// UpdateItem actualiza datos del catálogo (no la cantidad disponible).
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.items.Update(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "material no encontrado")
	}
	return c.JSON(out)
}

// ListItems lista el catálogo, opcionalmente por categoría.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.items.List(GetTenantID(c), c.Query("item_type"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteItem elimina un material del catálogo.
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.items.Delete(GetTenantID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "material eliminado"})
}

// AdjustStock aplica un ajuste manual con cantidad con signo.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	item, movement, err := h.adjust.AdjustStock(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"item": item, "movimiento": movement})
}

// RegisterEntries registra un lote de entradas de material (atómico).
func (h *InventoryHandler) RegisterEntries(c *fiber.Ctx) error {
	var in dto.BatchEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.adjust.RegisterEntries(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterExits registra un lote de salidas de material (atómico).
func (h *InventoryHandler) RegisterExits(c *fiber.Ctx) error {
	var in dto.BatchEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.adjust.RegisterExits(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements consulta el libro de movimientos con filtros opcionales.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	filter := repository.MovementFilter{
		Category: c.Query("item_type"),
		ItemID:   c.Query("item_id"),
		Kind:     c.Query("tipo_movimiento"),
	}
	if from := c.Query("desde"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "desde: formato RFC3339")
		}
		filter.From = &t
	}
	if to := c.Query("hasta"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "hasta: formato RFC3339")
		}
		filter.To = &t
	}
	out, err := h.reports.ListMovements(GetTenantID(c), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStockReport lista materiales en o bajo su stock mínimo.
func (h *InventoryHandler) LowStockReport(c *fiber.Ctx) error {
	out, err := h.reports.LowStockAlerts(c.Context(), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockValueReport agrega valor de inventario por categoría.
func (h *InventoryHandler) StockValueReport(c *fiber.Ctx) error {
	out, err := h.reports.StockValueByCategory(c.Context(), GetTenantID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpiryReport lista materiales y licencias próximos a vencer.
func (h *InventoryHandler) ExpiryReport(c *fiber.Ctx) error {
	out, err := h.reports.ExpiryAlerts(c.Context(), GetTenantID(c), c.QueryInt("dias", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
