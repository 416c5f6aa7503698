package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

func TestValidCategory(t *testing.T) {
	for _, c := range entity.Categories {
		assert.True(t, entity.ValidCategory(c), "la categoría %q debe ser válida", c)
	}
	assert.False(t, entity.ValidCategory(""), "cadena vacía no es categoría")
	assert.False(t, entity.ValidCategory("madera"), "categoría desconocida debe rechazarse")
	assert.False(t, entity.ValidCategory("Varilla"), "la comparación es sensible a mayúsculas")
}

func TestTrackableCategory_ExcluyeProductoTerminado(t *testing.T) {
	assert.True(t, entity.TrackableCategory(entity.CategoryVarilla))
	assert.True(t, entity.TrackableCategory(entity.CategoryMaterialDiseno))
	assert.False(t, entity.TrackableCategory(entity.CategoryProductoTerminado),
		"producto_terminado no participa en alertas de stock mínimo")
	assert.False(t, entity.TrackableCategory("desconocida"))
}

// El umbral de reorden es inclusivo: stock == mínimo ya dispara la alerta.
func TestBelowReorder_UmbralInclusivo(t *testing.T) {
	item := &entity.StockItem{OnHand: 10, ReorderLevel: 10}
	assert.True(t, item.BelowReorder(), "stock igual al mínimo debe alertar")

	item.OnHand = 11
	assert.False(t, item.BelowReorder())

	item.OnHand = 0
	assert.True(t, item.BelowReorder())
}

func TestValidMovementKind(t *testing.T) {
	valid := []string{
		entity.MovementEntrada, entity.MovementSalida, entity.MovementAjuste,
		entity.MovementTransferencia, entity.MovementMerma, entity.MovementUsoProduccion,
	}
	for _, k := range valid {
		assert.True(t, entity.ValidMovementKind(k), "tipo %q debe ser válido", k)
	}
	assert.False(t, entity.ValidMovementKind("devolucion"))
	assert.False(t, entity.ValidMovementKind(""))
}
