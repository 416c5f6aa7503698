package http

import (
	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/gofiber/fiber/v2"
)

// ProductionHandler maneja órdenes de producción, consumo y cuadros (protegido).
type ProductionHandler struct {
	orders  *production.OrdersUseCase
	usage   *production.RegisterUsageUseCase
	reports *production.ReportsUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(orders *production.OrdersUseCase, usage *production.RegisterUsageUseCase, reports *production.ReportsUseCase) *ProductionHandler {
	return &ProductionHandler{orders: orders, usage: usage, reports: reports}
}

// CreateOrder abre una orden de producción.
func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateProductionOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.orders.CreateOrder(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetOrder obtiene una orden con sus líneas de material.
func (h *ProductionHandler) GetOrder(c *fiber.Ctx) error {
	order, lines, err := h.orders.GetOrder(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if order == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(fiber.Map{"orden": order, "materiales": lines})
}

// ListOrders lista órdenes, opcionalmente por estado.
func (h *ProductionHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.orders.ListOrders(GetTenantID(c), c.Query("estado"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddMaterial agrega o acumula material planificado en una orden abierta.
func (h *ProductionHandler) AddMaterial(c *fiber.Ctx) error {
	var in dto.AddOrderMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.orders.AddMaterial(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus transiciona el estado de una orden.
func (h *ProductionHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Status == "" {
		return badRequest(c, "VALIDATION", "estado es requerido")
	}
	out, err := h.orders.UpdateStatus(c.Context(), GetTenantID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterUsage registra consumo y merma de material contra una orden.
func (h *ProductionHandler) RegisterUsage(c *fiber.Ctx) error {
	var in dto.RegisterUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.OrderID == "" || in.ItemID == "" {
		return badRequest(c, "VALIDATION", "orden_id y material_id son requeridos")
	}
	out, err := h.usage.RegisterUsage(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateFinishedGood da de alta un cuadro.
func (h *ProductionHandler) CreateFinishedGood(c *fiber.Ctx) error {
	var in dto.CreateFinishedGoodRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "nombre es requerido")
	}
	out, err := h.orders.CreateFinishedGood(GetTenantID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateFinishedGood actualiza datos o estado de un cuadro.
func (h *ProductionHandler) UpdateFinishedGood(c *fiber.Ctx) error {
	var in dto.UpdateFinishedGoodRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.orders.UpdateFinishedGood(GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cuadro no encontrado")
	}
	return c.JSON(out)
}

// ListFinishedGoods lista cuadros, opcionalmente por estado.
func (h *ProductionHandler) ListFinishedGoods(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.orders.ListFinishedGoods(GetTenantID(c), c.Query("estado"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OrderEfficiency calcula la eficiencia de material de una orden.
func (h *ProductionHandler) OrderEfficiency(c *fiber.Ctx) error {
	out, err := h.reports.OrderEfficiency(GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "orden no encontrada")
	}
	return c.JSON(out)
}

// Summary resume la producción del período (por defecto 30 días).
func (h *ProductionHandler) Summary(c *fiber.Ctx) error {
	out, err := h.reports.Summary(c.Context(), GetTenantID(c), c.QueryInt("dias", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WasteAnalysis agrega merma por material desde las líneas de orden.
func (h *ProductionHandler) WasteAnalysis(c *fiber.Ctx) error {
	out, err := h.reports.WasteAnalysis(c.Context(), GetTenantID(c), c.QueryInt("dias", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Consumption agrega consumo por material desde el libro de movimientos.
func (h *ProductionHandler) Consumption(c *fiber.Ctx) error {
	out, err := h.reports.Consumption(c.Context(), GetTenantID(c), c.QueryInt("dias", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
