package inventory

import (
	"context"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/fotostudio/gestion-api/pkg/logger"
	"github.com/google/uuid"
)

// AdjustStockUseCase aplica ajustes manuales de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner  TxRunner
	notifRepo repository.NotificationRepository
	log       *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, notifRepo repository.NotificationRepository, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, notifRepo: notifRepo, log: log}
}

// AdjustStock aplica un delta con signo al stock de un material y registra un
// movimiento de tipo ajuste con el valor absoluto del delta.
// Una salida que dejaría el stock negativo se rechaza con ErrInsufficientStock
// y no escribe nada: ni stock ni movimiento.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, tenantID, actor string, in dto.AdjustStockRequest) (*dto.StockItemResponse, *dto.MovementResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, nil, domain.ErrInvalidCategory
	}
	if in.ItemID == "" || in.Quantity == 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	reason := in.Reason
	if reason == "" {
		reason = "ajuste manual"
	}
	qty := in.Quantity
	if qty < 0 {
		qty = -qty
	}

	now := time.Now()
	var item *entity.StockItem
	mov := &entity.Movement{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Category:  in.Category,
		ItemID:    in.ItemID,
		Kind:      entity.MovementAjuste,
		Quantity:  qty,
		Reason:    reason,
		Actor:     actor,
		Date:      now,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		// Bloquea la fila del material para evitar condiciones de carrera
		locked, err := stockRepo.GetForUpdate(tenantID, in.ItemID)
		if err != nil {
			return err
		}
		if locked == nil || locked.Category != in.Category {
			return domain.ErrNotFound
		}
		newOnHand := locked.OnHand + in.Quantity
		if newOnHand < 0 {
			return domain.ErrInsufficientStock
		}
		if err := stockRepo.SetOnHand(tenantID, locked.ID, newOnHand); err != nil {
			return err
		}
		locked.OnHand = newOnHand
		locked.UpdatedAt = now
		item = locked
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, nil, err
	}

	uc.maybeAlertLowStock(item, actor)

	return ToStockItemResponse(item), toMovementResponse(mov), nil
}

// maybeAlertLowStock emite una notificación si el material quedó en o bajo el
// umbral. Mejor esfuerzo: un fallo aquí se registra pero no revierte el ajuste.
func (uc *AdjustStockUseCase) maybeAlertLowStock(item *entity.StockItem, actor string) {
	if item == nil || uc.notifRepo == nil {
		return
	}
	if !entity.TrackableCategory(item.Category) || !item.BelowReorder() {
		return
	}
	notif := &entity.Notification{
		ID:        uuid.New().String(),
		TenantID:  item.TenantID,
		Title:     "Stock bajo: " + item.Name,
		Message:   "El material quedó en o bajo el stock mínimo tras un movimiento de " + actor,
		Type:      entity.NotifAlerta,
		Priority:  entity.PriorityHigh,
		CreatedAt: time.Now(),
	}
	if err := uc.notifRepo.Create(notif); err != nil {
		uc.log.Warn().Err(err).
			Str("tenant_id", item.TenantID).
			Str("item_id", item.ID).
			Msg("no se pudo crear la notificación de stock bajo")
	}
}

// ToStockItemResponse mapea la entidad al DTO de respuesta.
func ToStockItemResponse(s *entity.StockItem) *dto.StockItemResponse {
	if s == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ID:           s.ID,
		TenantID:     s.TenantID,
		Category:     s.Category,
		Name:         s.Name,
		Spec:         s.Spec,
		Color:        s.Color,
		OnHand:       s.OnHand,
		ReorderLevel: s.ReorderLevel,
		UnitPrice:    s.UnitPrice,
		Location:     s.Location,
		ExpiresAt:    s.ExpiresAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                m.ID,
		Category:          m.Category,
		ItemID:            m.ItemID,
		Kind:              m.Kind,
		Quantity:          m.Quantity,
		Reason:            m.Reason,
		ProductionOrderID: m.ProductionOrderID,
		Actor:             m.Actor,
		Date:              m.Date,
	}
}
