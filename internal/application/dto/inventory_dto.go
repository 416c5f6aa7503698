package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest body para POST /api/inventory/items.
type CreateStockItemRequest struct {
	Category     string          `json:"item_type"`
	Name         string          `json:"nombre"`
	Spec         string          `json:"especificacion,omitempty"`
	Color        string          `json:"color,omitempty"`
	OnHand       int64           `json:"stock_actual"`
	ReorderLevel int64           `json:"stock_minimo"`
	UnitPrice    decimal.Decimal `json:"precio_unitario"`
	Location     string          `json:"ubicacion,omitempty"`
	ExpiresAt    *time.Time      `json:"fecha_vencimiento,omitempty"`
}

// UpdateStockItemRequest body para PUT /api/inventory/items/:id (campos opcionales).
// La cantidad disponible NO se edita por aquí: usar ajuste de stock.
type UpdateStockItemRequest struct {
	Name         *string          `json:"nombre,omitempty"`
	Spec         *string          `json:"especificacion,omitempty"`
	Color        *string          `json:"color,omitempty"`
	ReorderLevel *int64           `json:"stock_minimo,omitempty"`
	UnitPrice    *decimal.Decimal `json:"precio_unitario,omitempty"`
	Location     *string          `json:"ubicacion,omitempty"`
	ExpiresAt    *time.Time       `json:"fecha_vencimiento,omitempty"`
}

// StockItemResponse representación de un material del catálogo.
type StockItemResponse struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	Category     string          `json:"item_type"`
	Name         string          `json:"nombre"`
	Spec         string          `json:"especificacion,omitempty"`
	Color        string          `json:"color,omitempty"`
	OnHand       int64           `json:"stock_actual"`
	ReorderLevel int64           `json:"stock_minimo"`
	UnitPrice    decimal.Decimal `json:"precio_unitario"`
	Location     string          `json:"ubicacion,omitempty"`
	ExpiresAt    *time.Time      `json:"fecha_vencimiento,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockItemListResponse listado paginado de materiales.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// AdjustStockRequest body para POST /api/inventory/adjust-stock.
// Cantidad con signo: positiva agrega, negativa retira.
type AdjustStockRequest struct {
	Category string `json:"item_type"`
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"cantidad"`
	Reason   string `json:"motivo,omitempty"`
}

// MaterialEntry una línea de entrada o salida de materiales por lote.
type MaterialEntry struct {
	Category string `json:"item_type"`
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"cantidad"`
}

// BatchEntryRequest body para POST /api/inventory/entries.
type BatchEntryRequest struct {
	Materials []MaterialEntry `json:"materiales"`
	Reason    string          `json:"motivo,omitempty"`
}

// MovementResponse fila del libro de movimientos.
type MovementResponse struct {
	ID                string    `json:"id"`
	Category          string    `json:"item_type"`
	ItemID            string    `json:"item_id"`
	Kind              string    `json:"tipo_movimiento"`
	Quantity          int64     `json:"cantidad"`
	Reason            string    `json:"motivo,omitempty"`
	ProductionOrderID *string   `json:"orden_produccion_id,omitempty"`
	Actor             string    `json:"usuario,omitempty"`
	Date              time.Time `json:"fecha"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LowStockAlertDTO alerta de stock bajo para un material.
type LowStockAlertDTO struct {
	Category     string    `json:"item_type"`
	ItemID       string    `json:"item_id"`
	Name         string    `json:"nombre"`
	OnHand       int64     `json:"stock_actual"`
	ReorderLevel int64     `json:"stock_minimo"`
	Deficit      int64     `json:"diferencia"` // OnHand - ReorderLevel (<= 0 al alertar)
	Location     string    `json:"ubicacion,omitempty"`
	AlertedAt    time.Time `json:"fecha_alerta"`
}

// CategoryStockReportDTO resumen de valor de inventario por categoría.
type CategoryStockReportDTO struct {
	Category      string          `json:"categoria"`
	TotalItems    int64           `json:"total_items"`
	LowStockCount int64           `json:"items_stock_bajo"`
	TotalValue    decimal.Decimal `json:"valor_total"`
	LowStockPct   decimal.Decimal `json:"porcentaje_stock_bajo"` // redondeado a 2 decimales
}

// ExpiryAlertDTO material o licencia próxima a vencer.
type ExpiryAlertDTO struct {
	Category      string    `json:"item_type"`
	ItemID        string    `json:"item_id"`
	Name          string    `json:"nombre"`
	ExpiresAt     time.Time `json:"fecha_vencimiento"`
	DaysRemaining int       `json:"dias_restantes"`
}
