package repository

import "github.com/fotostudio/gestion-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos de cliente.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(tenantID, id string) (*entity.Order, error)
	Update(order *entity.Order) error
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Order, error)
	CreateDetail(detail *entity.OrderDetail) error
	ListDetails(orderID string) ([]*entity.OrderDetail, error)
}
