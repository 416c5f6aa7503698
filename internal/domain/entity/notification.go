package entity

import "time"

// Tipos y prioridades de notificación.
const (
	NotifInfo    = "info"
	NotifSuccess = "success"
	NotifWarning = "warning"
	NotifError   = "error"
	NotifAlerta  = "alerta"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification representa un aviso interno para los usuarios del tenant.
// UserID nil significa visible para todos los usuarios del tenant.
type Notification struct {
	ID        string
	TenantID  string
	UserID    *string
	Title     string
	Message   string
	Type      string // info, success, warning, error, alerta
	Priority  string // low, medium, high, urgent
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
