package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, tenant_id, user_id, title, description, client_name, kind, status, starts_at, ends_at, location, participants, notes, created_at, updated_at`

// AppointmentRepo implementación de AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID, &a.TenantID, &a.UserID, &a.Title, &a.Description, &a.ClientName,
		&a.Kind, &a.Status, &a.StartsAt, &a.EndsAt, &a.Location,
		&a.Participants, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.TenantID, appointment.UserID, appointment.Title,
		appointment.Description, appointment.ClientName, appointment.Kind, appointment.Status,
		appointment.StartsAt, appointment.EndsAt, appointment.Location,
		appointment.Participants, appointment.Notes, appointment.CreatedAt, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita del tenant.
func (r *AppointmentRepo) GetByID(tenantID, id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE tenant_id = $1 AND id = $2`
	a, err := scanAppointment(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// Update actualiza los datos de la cita.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET title = $3, description = $4, client_name = $5, kind = $6, status = $7,
		    starts_at = $8, ends_at = $9, location = $10, participants = $11,
		    notes = $12, updated_at = $13
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		appointment.TenantID, appointment.ID, appointment.Title, appointment.Description,
		appointment.ClientName, appointment.Kind, appointment.Status,
		appointment.StartsAt, appointment.EndsAt, appointment.Location,
		appointment.Participants, appointment.Notes, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista citas del rango [from, to), ordenadas por inicio.
func (r *AppointmentRepo) ListByTenant(tenantID string, from, to *time.Time, limit, offset int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE tenant_id = $1
		  AND ($2::timestamptz IS NULL OR starts_at >= $2)
		  AND ($3::timestamptz IS NULL OR starts_at < $3)
		ORDER BY starts_at LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, tenantID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina una cita del tenant.
func (r *AppointmentRepo) Delete(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM appointments WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
