package dto

import "time"

// CreateNotificationRequest body para POST /api/notifications.
type CreateNotificationRequest struct {
	UserID   *string `json:"user_id,omitempty"` // nil = todos los usuarios del tenant
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Type     string  `json:"notification_type,omitempty"`
	Priority string  `json:"priority,omitempty"`
}

// NotificationResponse representación de una notificación.
type NotificationResponse struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	UserID    *string    `json:"user_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"notification_type"`
	Priority  string     `json:"priority"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListResponse listado paginado de notificaciones.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
