package repository

import "github.com/fotostudio/gestion-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(tenantID, id string) (*entity.Notification, error)
	// ListByTenant devuelve notificaciones del tenant visibles para userID
	// (propias o globales), no leídas primero.
	ListByTenant(tenantID, userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(tenantID, id string) error
	Delete(tenantID, id string) error
}
