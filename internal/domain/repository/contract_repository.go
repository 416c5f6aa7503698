package repository

import "github.com/fotostudio/gestion-api/internal/domain/entity"

// ContractRepository define el puerto de persistencia para contratos.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(tenantID, id string) (*entity.Contract, error)
	Update(contract *entity.Contract) error
	ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Contract, error)
}
