package repository

import (
	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

// ProductionOrderRepository define el puerto de persistencia para órdenes de producción.
type ProductionOrderRepository interface {
	Create(order *entity.ProductionOrder) error
	GetByID(tenantID, id string) (*entity.ProductionOrder, error)
	Update(order *entity.ProductionOrder) error
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.ProductionOrder, error)
}

// ProductionLineRepository define el puerto para las líneas de material de una orden.
type ProductionLineRepository interface {
	Create(line *entity.ProductionLine) error
	// GetByOrderAndItem devuelve la línea de (orden, categoría, item), o nil si no existe.
	GetByOrderAndItem(orderID, category, itemID string) (*entity.ProductionLine, error)
	Update(line *entity.ProductionLine) error
	ListByOrder(orderID string) ([]*entity.ProductionLine, error)
}

// FinishedGoodRepository define el puerto de persistencia para cuadros (productos terminados).
type FinishedGoodRepository interface {
	Create(good *entity.FinishedGood) error
	GetByID(tenantID, id string) (*entity.FinishedGood, error)
	Update(good *entity.FinishedGood) error
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.FinishedGood, error)
	// MarkFinishedByOrder pasa a "terminado" los cuadros en_produccion de la orden
	// y devuelve cuántos cambiaron. Se invoca dentro de la tx que completa la orden.
	MarkFinishedByOrder(tenantID, orderID string) (int64, error)
}
