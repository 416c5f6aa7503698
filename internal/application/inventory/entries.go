package inventory

import (
	"context"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
)

// RegisterEntries registra un lote de entradas de materiales en una sola
// transacción: si una línea falla, ninguna se aplica.
func (uc *AdjustStockUseCase) RegisterEntries(ctx context.Context, tenantID, actor string, in dto.BatchEntryRequest) ([]dto.MovementResponse, error) {
	return uc.registerBatch(ctx, tenantID, actor, in, entity.MovementEntrada)
}

// RegisterExits registra un lote de salidas de materiales en una sola
// transacción. Cualquier línea con stock insuficiente rechaza el lote completo.
func (uc *AdjustStockUseCase) RegisterExits(ctx context.Context, tenantID, actor string, in dto.BatchEntryRequest) ([]dto.MovementResponse, error) {
	return uc.registerBatch(ctx, tenantID, actor, in, entity.MovementSalida)
}

func (uc *AdjustStockUseCase) registerBatch(ctx context.Context, tenantID, actor string, in dto.BatchEntryRequest, kind string) ([]dto.MovementResponse, error) {
	if len(in.Materials) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, m := range in.Materials {
		if !entity.ValidCategory(m.Category) {
			return nil, domain.ErrInvalidCategory
		}
		if m.ItemID == "" || m.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	reason := in.Reason
	if reason == "" {
		if kind == entity.MovementEntrada {
			reason = "entrada de materiales"
		} else {
			reason = "salida de materiales"
		}
	}

	now := time.Now()
	movements := make([]*entity.Movement, 0, len(in.Materials))
	lowStock := make([]*entity.StockItem, 0)

	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) error {
		for _, m := range in.Materials {
			locked, err := stockRepo.GetForUpdate(tenantID, m.ItemID)
			if err != nil {
				return err
			}
			if locked == nil || locked.Category != m.Category {
				return domain.ErrNotFound
			}
			newOnHand := locked.OnHand + m.Quantity
			if kind == entity.MovementSalida {
				newOnHand = locked.OnHand - m.Quantity
				if newOnHand < 0 {
					return domain.ErrInsufficientStock
				}
			}
			if err := stockRepo.SetOnHand(tenantID, locked.ID, newOnHand); err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:        uuid.New().String(),
				TenantID:  tenantID,
				Category:  m.Category,
				ItemID:    m.ItemID,
				Kind:      kind,
				Quantity:  m.Quantity,
				Reason:    reason,
				Actor:     actor,
				Date:      now,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			movements = append(movements, mov)
			locked.OnHand = newOnHand
			if entity.TrackableCategory(locked.Category) && locked.BelowReorder() {
				lowStock = append(lowStock, locked)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range lowStock {
		uc.maybeAlertLowStock(item, actor)
	}

	out := make([]dto.MovementResponse, 0, len(movements))
	for _, mov := range movements {
		out = append(out, *toMovementResponse(mov))
	}
	return out, nil
}
