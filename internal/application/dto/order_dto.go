package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetailInput línea de pedido al crear.
type OrderDetailInput struct {
	Category  string          `json:"item_type"`
	ItemID    string          `json:"item_id"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ClientID string             `json:"cliente_id"`
	DueDate  *time.Time         `json:"fecha_entrega_estimada,omitempty"`
	Details  []OrderDetailInput `json:"detalles"`
}

// UpdateOrderRequest body para PUT /api/orders/:id.
type UpdateOrderRequest struct {
	Status  *string    `json:"estado,omitempty"`
	DueDate *time.Time `json:"fecha_entrega_estimada,omitempty"`
}

// OrderDetailResponse línea de pedido persistida.
type OrderDetailResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"item_type"`
	ItemID    string          `json:"item_id"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido con sus líneas.
type OrderResponse struct {
	ID        string                `json:"id"`
	TenantID  string                `json:"tenant_id"`
	ClientID  string                `json:"cliente_id"`
	OrderDate time.Time             `json:"fecha_pedido"`
	DueDate   *time.Time            `json:"fecha_entrega_estimada,omitempty"`
	Status    string                `json:"estado"`
	Total     decimal.Decimal       `json:"total"`
	Details   []OrderDetailResponse `json:"detalles,omitempty"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
