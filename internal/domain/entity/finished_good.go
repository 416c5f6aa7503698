package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un cuadro (producto terminado).
const (
	GoodEnProduccion = "en_produccion"
	GoodTerminado    = "terminado"
	GoodEnAlmacen    = "en_almacen"
	GoodEnTienda     = "en_tienda"
	GoodEntregado    = "entregado"
	GoodVendido      = "vendido"
)

// FinishedGood representa un cuadro producido, opcionalmente ligado a la
// orden de producción que lo originó.
type FinishedGood struct {
	ID          string
	TenantID    string
	OrderID     *string
	Name        string
	Description string
	Dimensions  string
	SalePrice   decimal.Decimal
	Location    string
	Status      string
	FinishedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
