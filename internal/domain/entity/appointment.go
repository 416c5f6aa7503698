package entity

import "time"

// Tipos y estados de cita de agenda.
const (
	CitaReunion = "reunion"
	CitaSesion  = "sesion"
	CitaEntrega = "entrega"

	CitaPendiente  = "pendiente"
	CitaConfirmada = "confirmada"
	CitaCompletada = "completada"
	CitaCancelada  = "cancelada"
)

// Appointment representa una cita de la agenda del estudio
// (sesión fotográfica, reunión o entrega).
type Appointment struct {
	ID           string
	TenantID     string
	UserID       string
	Title        string
	Description  string
	ClientName   string
	Kind         string // reunion, sesion, entrega
	Status       string
	StartsAt     time.Time
	EndsAt       *time.Time
	Location     string
	Participants int
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
