package repository

import "github.com/fotostudio/gestion-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(tenantID, id string) (*entity.Client, error)
	Update(client *entity.Client) error
	// ListByTenant filtra por nombre/email si search no es vacío.
	ListByTenant(tenantID, search string, limit, offset int) ([]*entity.Client, error)
	Delete(tenantID, id string) error
}
