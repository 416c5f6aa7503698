package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de material del catálogo. Una sola tabla con enum de categoría
// en lugar de una tabla casi idéntica por categoría.
const (
	CategoryVarilla              = "varilla"
	CategoryPinturaAcabado       = "pintura_acabado"
	CategoryMaterialImpresion    = "material_impresion"
	CategoryMaterialRecordatorio = "material_recordatorio"
	CategorySoftwareEquipo       = "software_equipo"
	CategoryMaterialPintura      = "material_pintura"
	CategoryMaterialDiseno       = "material_diseno"
	CategoryProductoTerminado    = "producto_terminado"
)

// Categories lista todas las categorías válidas en orden estable.
var Categories = []string{
	CategoryVarilla,
	CategoryPinturaAcabado,
	CategoryMaterialImpresion,
	CategoryMaterialRecordatorio,
	CategorySoftwareEquipo,
	CategoryMaterialPintura,
	CategoryMaterialDiseno,
	CategoryProductoTerminado,
}

// ValidCategory reporta si s es una categoría de material conocida.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// TrackableCategory reporta si la categoría participa en alertas de stock mínimo.
// Los productos terminados no manejan umbral de reorden.
func TrackableCategory(s string) bool {
	return ValidCategory(s) && s != CategoryProductoTerminado
}

// StockItem representa un material del inventario, de cualquier categoría.
// OnHand nunca debe quedar negativo: toda salida que sobregire se rechaza.
type StockItem struct {
	ID           string
	TenantID     string
	Category     string
	Name         string
	Spec         string // tipo/medida/referencia según categoría
	Color        string
	OnHand       int64
	ReorderLevel int64
	UnitPrice    decimal.Decimal
	Location     string
	ExpiresAt    *time.Time // vencimiento de material o licencia (opcional)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowReorder reporta si el stock está en o bajo el umbral (comparación inclusiva).
func (s *StockItem) BelowReorder() bool {
	return s.OnHand <= s.ReorderLevel
}
