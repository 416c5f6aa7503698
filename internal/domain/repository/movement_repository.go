package repository

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar el libro de movimientos.
type MovementFilter struct {
	Category string
	ItemID   string
	Kind     string
	From     *time.Time
	To       *time.Time
}

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es de solo inserción: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(tenantID, id string) (*entity.Movement, error)
	ListByTenant(tenantID string, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
}
