package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemUseCase casos de uso CRUD del catálogo de materiales. La cantidad
// disponible solo cambia por ajustes y consumos, nunca por el update directo.
type ItemUseCase struct {
	stockRepo repository.StockItemRepository
	movRepo   repository.MovementRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(stockRepo repository.StockItemRepository, movRepo repository.MovementRepository) *ItemUseCase {
	return &ItemUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// Create da de alta un material. Si llega stock inicial se registra un
// movimiento de entrada en el libro.
func (uc *ItemUseCase) Create(tenantID, actor string, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if in.Name == "" || in.OnHand < 0 || in.ReorderLevel < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Category:     in.Category,
		Name:         in.Name,
		Spec:         in.Spec,
		Color:        in.Color,
		OnHand:       in.OnHand,
		ReorderLevel: in.ReorderLevel,
		UnitPrice:    in.UnitPrice,
		Location:     in.Location,
		ExpiresAt:    in.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, err
	}
	if in.OnHand > 0 {
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Category:  in.Category,
			ItemID:    item.ID,
			Kind:      entity.MovementEntrada,
			Quantity:  in.OnHand,
			Reason:    "stock inicial",
			Actor:     actor,
			Date:      now,
			CreatedAt: now,
		}
		if err := uc.movRepo.Create(mov); err != nil {
			return nil, err
		}
	}
	return inventory.ToStockItemResponse(item), nil
}

// GetByID obtiene un material del tenant.
func (uc *ItemUseCase) GetByID(tenantID, id string) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return inventory.ToStockItemResponse(item), nil
}

// Update actualiza los datos descriptivos del material. El stock disponible
// no se toca por aquí.
func (uc *ItemUseCase) Update(tenantID, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Spec != nil {
		item.Spec = *in.Spec
	}
	if in.Color != nil {
		item.Color = *in.Color
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.ExpiresAt != nil {
		item.ExpiresAt = in.ExpiresAt
	}
	item.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, err
	}
	return inventory.ToStockItemResponse(item), nil
}

// List lista materiales del tenant, opcionalmente por categoría.
func (uc *ItemUseCase) List(tenantID, category string, page dto.PageRequest) (*dto.StockItemListResponse, error) {
	page.DefaultPage()
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidCategory
	}
	list, err := uc.stockRepo.ListByTenant(tenantID, category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *inventory.ToStockItemResponse(it))
	}
	return &dto.StockItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un material del catálogo. El libro de movimientos conserva
// su historial.
func (uc *ItemUseCase) Delete(tenantID, id string) error {
	item, err := uc.stockRepo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(tenantID, id)
}
