package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionOrderRequest body para POST /api/production/orders.
type CreateProductionOrderRequest struct {
	OrderNumber    string     `json:"numero_orden,omitempty"`
	RequestedBy    string     `json:"solicitado_por,omitempty"`
	ResponsibleFor string     `json:"responsable_produccion,omitempty"`
	DueDate        *time.Time `json:"fecha_entrega_estimada,omitempty"`
	Notes          string     `json:"observaciones,omitempty"`
}

// UpdateOrderStatusRequest body para POST /api/production/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado"`
}

// AddOrderMaterialRequest body para POST /api/production/orders/:id/materials.
type AddOrderMaterialRequest struct {
	Category string `json:"material_type"`
	ItemID   string `json:"material_id"`
	Planned  int64  `json:"cantidad_planificada"`
}

// ProductionOrderResponse representación de una orden de producción.
type ProductionOrderResponse struct {
	ID             string     `json:"id"`
	TenantID       string     `json:"tenant_id"`
	OrderNumber    string     `json:"numero_orden"`
	RequestedBy    string     `json:"solicitado_por,omitempty"`
	ResponsibleFor string     `json:"responsable_produccion,omitempty"`
	Status         string     `json:"estado"`
	Notes          string     `json:"observaciones,omitempty"`
	CreatedDate    time.Time  `json:"fecha_creacion"`
	DueDate        *time.Time `json:"fecha_entrega_estimada,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ProductionOrderListResponse listado paginado de órdenes.
type ProductionOrderListResponse struct {
	Items []ProductionOrderResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// ProductionLineDTO línea de material de una orden.
type ProductionLineDTO struct {
	ID       string `json:"id"`
	Category string `json:"material_type"`
	ItemID   string `json:"material_id"`
	Planned  int64  `json:"cantidad_planificada"`
	Consumed int64  `json:"cantidad_usada"`
	Waste    int64  `json:"cantidad_merma"`
}

// RegisterUsageRequest body para POST /api/production/register.
type RegisterUsageRequest struct {
	OrderID  string `json:"orden_id"`
	Category string `json:"material_type"`
	ItemID   string `json:"material_id"`
	Consumed int64  `json:"cantidad_usada"`
	Waste    int64  `json:"cantidad_merma"`
}

// OrderEfficiencyDTO eficiencia de una orden: ((usado - merma) / planificado) × 100.
type OrderEfficiencyDTO struct {
	OrderID       string              `json:"orden_id"`
	OrderNumber   string              `json:"numero_orden"`
	TotalPlanned  int64               `json:"total_planificado"`
	TotalConsumed int64               `json:"total_usado"`
	TotalWaste    int64               `json:"total_merma"`
	Efficiency    decimal.Decimal     `json:"eficiencia"`
	Lines         []ProductionLineDTO `json:"detalles"`
}

// ProductionReportDTO resumen de producción de un período.
type ProductionReportDTO struct {
	PeriodDays      int             `json:"periodo_dias"`
	TotalOrders     int64           `json:"total_ordenes"`
	CompletedOrders int64           `json:"ordenes_completadas"`
	InProcessOrders int64           `json:"ordenes_en_proceso"`
	CancelledOrders int64           `json:"ordenes_canceladas"`
	Efficiency      decimal.Decimal `json:"eficiencia"`
	TotalWaste      int64           `json:"total_merma"`
	AvgDays         decimal.Decimal `json:"tiempo_promedio_dias"`
}

// MaterialUsageDTO consumo/merma agregado por material.
type MaterialUsageDTO struct {
	Category       string          `json:"material_type"`
	ItemID         string          `json:"material_id"`
	Name           string          `json:"material_nombre"`
	Consumed       int64           `json:"cantidad_usada"`
	Waste          int64           `json:"cantidad_merma"`
	OrdersAffected int64           `json:"ordenes_afectadas"`
	WastePct       decimal.Decimal `json:"porcentaje_merma"`
}

// CreateFinishedGoodRequest body para POST /api/production/cuadros.
type CreateFinishedGoodRequest struct {
	OrderID     *string         `json:"orden_id,omitempty"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Dimensions  string          `json:"dimensiones,omitempty"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Location    string          `json:"ubicacion,omitempty"`
}

// UpdateFinishedGoodRequest body para PUT /api/production/cuadros/:id.
type UpdateFinishedGoodRequest struct {
	Name        *string          `json:"nombre,omitempty"`
	Description *string          `json:"descripcion,omitempty"`
	Dimensions  *string          `json:"dimensiones,omitempty"`
	SalePrice   *decimal.Decimal `json:"precio_venta,omitempty"`
	Location    *string          `json:"ubicacion,omitempty"`
	Status      *string          `json:"estado,omitempty"`
}

// FinishedGoodResponse representación de un cuadro.
type FinishedGoodResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	OrderID     *string         `json:"orden_id,omitempty"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Dimensions  string          `json:"dimensiones,omitempty"`
	SalePrice   decimal.Decimal `json:"precio_venta"`
	Location    string          `json:"ubicacion,omitempty"`
	Status      string          `json:"estado"`
	FinishedAt  *time.Time      `json:"fecha_terminacion,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FinishedGoodListResponse listado paginado de cuadros.
type FinishedGoodListResponse struct {
	Items []FinishedGoodResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
