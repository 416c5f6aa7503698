package dto

import "time"

// CreateAppointmentRequest body para POST /api/agenda.
type CreateAppointmentRequest struct {
	Title        string     `json:"titulo"`
	Description  string     `json:"descripcion,omitempty"`
	ClientName   string     `json:"client,omitempty"`
	Kind         string     `json:"type,omitempty"`
	StartsAt     time.Time  `json:"fecha_inicio"`
	EndsAt       *time.Time `json:"fecha_fin,omitempty"`
	Location     string     `json:"location,omitempty"`
	Participants int        `json:"participants,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// UpdateAppointmentRequest body para PUT /api/agenda/:id.
type UpdateAppointmentRequest struct {
	Title        *string    `json:"titulo,omitempty"`
	Description  *string    `json:"descripcion,omitempty"`
	ClientName   *string    `json:"client,omitempty"`
	Kind         *string    `json:"type,omitempty"`
	Status       *string    `json:"estado,omitempty"`
	StartsAt     *time.Time `json:"fecha_inicio,omitempty"`
	EndsAt       *time.Time `json:"fecha_fin,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Participants *int       `json:"participants,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// AppointmentResponse representación de una cita.
type AppointmentResponse struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"titulo"`
	Description  string     `json:"descripcion,omitempty"`
	ClientName   string     `json:"client,omitempty"`
	Kind         string     `json:"type"`
	Status       string     `json:"estado"`
	StartsAt     time.Time  `json:"fecha_inicio"`
	EndsAt       *time.Time `json:"fecha_fin,omitempty"`
	Location     string     `json:"location,omitempty"`
	Participants int        `json:"participants"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AppointmentListResponse listado paginado de citas.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
