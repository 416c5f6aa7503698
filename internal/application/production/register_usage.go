package production

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

// RegisterUsageUseCase registra consumo y merma de material contra una orden
// de producción: descuenta stock con bloqueo de fila, acumula en la línea y
// escribe los movimientos correspondientes, todo en una transacción.
type RegisterUsageUseCase struct {
	txRunner  TxRunner
	notifRepo repository.NotificationRepository
	log       *logger.Logger
}

// NewRegisterUsageUseCase construye el caso de uso.
func NewRegisterUsageUseCase(txRunner TxRunner, notifRepo repository.NotificationRepository, log *logger.Logger) *RegisterUsageUseCase {
	return &RegisterUsageUseCase{txRunner: txRunner, notifRepo: notifRepo, log: log}
}

// RegisterUsage descuenta del stock usado + merma. Si el stock no alcanza
// para el total, se rechaza sin tocar nada. Registros repetidos sobre el
// mismo material acumulan en la línea en vez de reemplazarla. La primera vez
// que una orden pendiente recibe consumo pasa a en_proceso.
func (uc *RegisterUsageUseCase) RegisterUsage(ctx context.Context, tenantID, actor string, in dto.RegisterUsageRequest) (*dto.ProductionLineDTO, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if in.OrderID == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Consumed < 0 || in.Waste < 0 || in.Consumed+in.Waste == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var (
		resultLine *entity.ProductionLine
		updated    *entity.StockItem
	)

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		lineRepo repository.ProductionLineRepository,
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
		_ repository.FinishedGoodRepository,
	) error {
		order, err := orderRepo.GetByID(tenantID, in.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPendiente && order.Status != entity.OrderEnProceso {
			return domain.ErrConflict
		}

		// Bloquea la fila del material para evitar condiciones de carrera
		item, err := stockRepo.GetForUpdate(tenantID, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.Category != in.Category {
			return domain.ErrNotFound
		}
		total := in.Consumed + in.Waste
		newOnHand := item.OnHand - total
		if newOnHand < 0 {
			return domain.ErrInsufficientStock
		}
		if err := stockRepo.SetOnHand(tenantID, item.ID, newOnHand); err != nil {
			return err
		}
		item.OnHand = newOnHand
		updated = item

		line, err := lineRepo.GetByOrderAndItem(order.ID, in.Category, in.ItemID)
		if err != nil {
			return err
		}
		if line == nil {
			line = &entity.ProductionLine{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				Category:  in.Category,
				ItemID:    in.ItemID,
				Consumed:  in.Consumed,
				Waste:     in.Waste,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := lineRepo.Create(line); err != nil {
				return err
			}
		} else {
			line.Consumed += in.Consumed
			line.Waste += in.Waste
			line.UpdatedAt = now
			if err := lineRepo.Update(line); err != nil {
				return err
			}
		}
		resultLine = line

		if in.Consumed > 0 {
			mov := &entity.Movement{
				ID:                uuid.New().String(),
				TenantID:          tenantID,
				Category:          in.Category,
				ItemID:            in.ItemID,
				Kind:              entity.MovementUsoProduccion,
				Quantity:          in.Consumed,
				Reason:            "consumo orden " + order.OrderNumber,
				ProductionOrderID: &order.ID,
				Actor:             actor,
				Date:              now,
				CreatedAt:         now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		if in.Waste > 0 {
			mov := &entity.Movement{
				ID:                uuid.New().String(),
				TenantID:          tenantID,
				Category:          in.Category,
				ItemID:            in.ItemID,
				Kind:              entity.MovementMerma,
				Quantity:          in.Waste,
				Reason:            "merma orden " + order.OrderNumber,
				ProductionOrderID: &order.ID,
				Actor:             actor,
				Date:              now,
				CreatedAt:         now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		if order.Status == entity.OrderPendiente {
			order.Status = entity.OrderEnProceso
			order.UpdatedAt = now
			if err := orderRepo.Update(order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.maybeAlertLowStock(updated)

	d := toLineDTO(resultLine)
	return &d, nil
}

// maybeAlertLowStock emite una notificación si el material quedó en o bajo el
// umbral tras el consumo. Mejor esfuerzo: no revierte el registro.
func (uc *RegisterUsageUseCase) maybeAlertLowStock(item *entity.StockItem) {
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
		Message:   "El material quedó en o bajo el stock mínimo tras consumo de producción",
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
