package repository

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para citas de agenda.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(tenantID, id string) (*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	// ListByTenant lista citas del rango [from, to); from/to nil = sin límite.
	ListByTenant(tenantID string, from, to *time.Time, limit, offset int) ([]*entity.Appointment, error)
	Delete(tenantID, id string) error
}
