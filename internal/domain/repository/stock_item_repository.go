package repository

import (
	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para el catálogo de materiales (DIP).
// Las operaciones siempre reciben tenantID explícito: nunca se confía en estado ambiente.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(tenantID, id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de una tx.
	GetForUpdate(tenantID, id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	// SetOnHand actualiza solo la cantidad disponible (tras un movimiento aplicado).
	SetOnHand(tenantID, id string, onHand int64) error
	ListByTenant(tenantID, category string, limit, offset int) ([]*entity.StockItem, error)
	Delete(tenantID, id string) error
}
