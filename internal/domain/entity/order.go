package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de cliente.
const (
	PedidoPendiente = "pendiente"
	PedidoEnProceso = "en_proceso"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

// Order representa un pedido de cliente (venta de cuadros o materiales).
type Order struct {
	ID        string
	TenantID  string
	ClientID  string
	OrderDate time.Time
	DueDate   *time.Time
	Status    string
	Total     decimal.Decimal // recalculado desde las líneas
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDetail es una línea de pedido: referencia un item del catálogo
// (por categoría) o un cuadro terminado.
type OrderDetail struct {
	ID        string
	OrderID   string
	Category  string
	ItemID    string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	CreatedAt time.Time
}
