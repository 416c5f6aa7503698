package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
)

// NotificationUseCase casos de uso para notificaciones internas.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func validNotifType(s string) bool {
	switch s {
	case entity.NotifInfo, entity.NotifSuccess, entity.NotifWarning, entity.NotifError, entity.NotifAlerta:
		return true
	}
	return false
}

func validPriority(s string) bool {
	switch s {
	case entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh, entity.PriorityUrgent:
		return true
	}
	return false
}

// Create emite una notificación. UserID nil la hace visible a todo el tenant.
func (uc *NotificationUseCase) Create(tenantID string, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if in.Title == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	kind := in.Type
	if kind == "" {
		kind = entity.NotifInfo
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validNotifType(kind) || !validPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	notif := &entity.Notification{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		UserID:    in.UserID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      kind,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(notif); err != nil {
		return nil, err
	}
	return toNotificationResponse(notif), nil
}

// List lista notificaciones visibles para el usuario, no leídas primero.
func (uc *NotificationUseCase) List(tenantID, userID string, onlyUnread bool, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, userID, onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// MarkRead marca una notificación como leída.
func (uc *NotificationUseCase) MarkRead(tenantID, id string) error {
	notif, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return domain.ErrNotFound
	}
	return uc.repo.MarkRead(tenantID, id)
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(tenantID, id string) error {
	notif, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		TenantID:  n.TenantID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Priority:  n.Priority,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
