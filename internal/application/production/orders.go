package production

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/fotostudio/gestion-api/pkg/logger"
	"github.com/google/uuid"
)

// OrdersUseCase gestiona órdenes de producción: creación, planificación de
// materiales y máquina de estados. Completar una orden marca sus cuadros como
// terminados en la misma transacción.
type OrdersUseCase struct {
	txRunner  TxRunner
	orderRepo repository.ProductionOrderRepository
	lineRepo  repository.ProductionLineRepository
	stockRepo repository.StockItemRepository
	goodRepo  repository.FinishedGoodRepository
	log       *logger.Logger
}

// NewOrdersUseCase construye el caso de uso de órdenes de producción.
func NewOrdersUseCase(
	txRunner TxRunner,
	orderRepo repository.ProductionOrderRepository,
	lineRepo repository.ProductionLineRepository,
	stockRepo repository.StockItemRepository,
	goodRepo repository.FinishedGoodRepository,
	log *logger.Logger,
) *OrdersUseCase {
	return &OrdersUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
		stockRepo: stockRepo,
		goodRepo:  goodRepo,
		log:       log,
	}
}

// CreateOrder crea una orden en estado pendiente. Si no llega número de orden
// se genera uno con la fecha y un sufijo aleatorio.
func (uc *OrdersUseCase) CreateOrder(ctx context.Context, tenantID, actor string, in dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	now := time.Now()
	number := strings.TrimSpace(in.OrderNumber)
	if number == "" {
		number = fmt.Sprintf("OP-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.New().String()[:6]))
	}
	requestedBy := in.RequestedBy
	if requestedBy == "" {
		requestedBy = actor
	}
	order := &entity.ProductionOrder{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		OrderNumber:    number,
		RequestedBy:    requestedBy,
		ResponsibleFor: in.ResponsibleFor,
		Status:         entity.OrderPendiente,
		Notes:          in.Notes,
		CreatedDate:    now,
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetOrder devuelve la orden con sus líneas de material.
func (uc *OrdersUseCase) GetOrder(tenantID, id string) (*dto.ProductionOrderResponse, []dto.ProductionLineDTO, error) {
	order, err := uc.orderRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return toOrderResponse(order), toLineDTOs(lines), nil
}

// ListOrders lista órdenes del tenant, opcionalmente filtradas por estado.
func (uc *OrdersUseCase) ListOrders(tenantID, status string, page dto.PageRequest) (*dto.ProductionOrderListResponse, error) {
	page.DefaultPage()
	if status != "" {
		switch status {
		case entity.OrderPendiente, entity.OrderEnProceso, entity.OrderCompletada, entity.OrderCancelada:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	orders, err := uc.orderRepo.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.ProductionOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// AddMaterial planifica material para una orden. Si el material ya tiene
// línea, la cantidad planificada se acumula. Solo sobre órdenes abiertas.
func (uc *OrdersUseCase) AddMaterial(ctx context.Context, tenantID, orderID string, in dto.AddOrderMaterialRequest) (*dto.ProductionLineDTO, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if in.ItemID == "" || in.Planned <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.ProductionLine
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		lineRepo repository.ProductionLineRepository,
		stockRepo repository.StockItemRepository,
		_ repository.MovementRepository,
		_ repository.FinishedGoodRepository,
	) error {
		order, err := orderRepo.GetByID(tenantID, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPendiente && order.Status != entity.OrderEnProceso {
			return domain.ErrConflict
		}
		item, err := stockRepo.GetByID(tenantID, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.Category != in.Category {
			return domain.ErrNotFound
		}
		now := time.Now()
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
				Planned:   in.Planned,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := lineRepo.Create(line); err != nil {
				return err
			}
		} else {
			line.Planned += in.Planned
			line.UpdatedAt = now
			if err := lineRepo.Update(line); err != nil {
				return err
			}
		}
		result = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	d := toLineDTO(result)
	return &d, nil
}

// UpdateStatus aplica una transición de la máquina de estados. Al completar,
// los cuadros en producción de la orden pasan a terminado en la misma tx.
func (uc *OrdersUseCase) UpdateStatus(ctx context.Context, tenantID, id, to string) (*dto.ProductionOrderResponse, error) {
	switch to {
	case entity.OrderPendiente, entity.OrderEnProceso, entity.OrderCompletada, entity.OrderCancelada:
	default:
		return nil, domain.ErrInvalidInput
	}

	var result *entity.ProductionOrder
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		_ repository.ProductionLineRepository,
		_ repository.StockItemRepository,
		_ repository.MovementRepository,
		goodRepo repository.FinishedGoodRepository,
	) error {
		order, err := orderRepo.GetByID(tenantID, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.CanTransition(to) {
			return domain.ErrInvalidTransition
		}
		order.Status = to
		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if to == entity.OrderCompletada {
			finished, err := goodRepo.MarkFinishedByOrder(tenantID, order.ID)
			if err != nil {
				return err
			}
			uc.log.Info().
				Str("tenant_id", tenantID).
				Str("orden_id", order.ID).
				Int64("cuadros_terminados", finished).
				Msg("orden de producción completada")
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(result), nil
}

// CreateFinishedGood registra un cuadro, opcionalmente ligado a una orden.
func (uc *OrdersUseCase) CreateFinishedGood(tenantID string, in dto.CreateFinishedGoodRequest) (*dto.FinishedGoodResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OrderID != nil {
		order, err := uc.orderRepo.GetByID(tenantID, *in.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	good := &entity.FinishedGood{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		OrderID:     in.OrderID,
		Name:        in.Name,
		Description: in.Description,
		Dimensions:  in.Dimensions,
		SalePrice:   in.SalePrice,
		Location:    in.Location,
		Status:      entity.GoodEnProduccion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.goodRepo.Create(good); err != nil {
		return nil, err
	}
	return toGoodResponse(good), nil
}

// UpdateFinishedGood actualiza datos o estado de un cuadro.
func (uc *OrdersUseCase) UpdateFinishedGood(tenantID, id string, in dto.UpdateFinishedGoodRequest) (*dto.FinishedGoodResponse, error) {
	good, err := uc.goodRepo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if good == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		good.Name = *in.Name
	}
	if in.Description != nil {
		good.Description = *in.Description
	}
	if in.Dimensions != nil {
		good.Dimensions = *in.Dimensions
	}
	if in.SalePrice != nil {
		good.SalePrice = *in.SalePrice
	}
	if in.Location != nil {
		good.Location = *in.Location
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.GoodEnProduccion, entity.GoodTerminado, entity.GoodEnAlmacen,
			entity.GoodEnTienda, entity.GoodEntregado, entity.GoodVendido:
		default:
			return nil, domain.ErrInvalidInput
		}
		if *in.Status != entity.GoodEnProduccion && good.FinishedAt == nil {
			now := time.Now()
			good.FinishedAt = &now
		}
		good.Status = *in.Status
	}
	good.UpdatedAt = time.Now()
	if err := uc.goodRepo.Update(good); err != nil {
		return nil, err
	}
	return toGoodResponse(good), nil
}

// ListFinishedGoods lista cuadros del tenant, opcionalmente por estado.
func (uc *OrdersUseCase) ListFinishedGoods(tenantID, status string, page dto.PageRequest) (*dto.FinishedGoodListResponse, error) {
	page.DefaultPage()
	goods, err := uc.goodRepo.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinishedGoodResponse, 0, len(goods))
	for _, g := range goods {
		items = append(items, *toGoodResponse(g))
	}
	return &dto.FinishedGoodListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toOrderResponse(o *entity.ProductionOrder) *dto.ProductionOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.ProductionOrderResponse{
		ID:             o.ID,
		TenantID:       o.TenantID,
		OrderNumber:    o.OrderNumber,
		RequestedBy:    o.RequestedBy,
		ResponsibleFor: o.ResponsibleFor,
		Status:         o.Status,
		Notes:          o.Notes,
		CreatedDate:    o.CreatedDate,
		DueDate:        o.DueDate,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toLineDTO(l *entity.ProductionLine) dto.ProductionLineDTO {
	return dto.ProductionLineDTO{
		ID:       l.ID,
		Category: l.Category,
		ItemID:   l.ItemID,
		Planned:  l.Planned,
		Consumed: l.Consumed,
		Waste:    l.Waste,
	}
}

func toLineDTOs(lines []*entity.ProductionLine) []dto.ProductionLineDTO {
	out := make([]dto.ProductionLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, toLineDTO(l))
	}
	return out
}

func toGoodResponse(g *entity.FinishedGood) *dto.FinishedGoodResponse {
	if g == nil {
		return nil
	}
	return &dto.FinishedGoodResponse{
		ID:          g.ID,
		TenantID:    g.TenantID,
		OrderID:     g.OrderID,
		Name:        g.Name,
		Description: g.Description,
		Dimensions:  g.Dimensions,
		SalePrice:   g.SalePrice,
		Location:    g.Location,
		Status:      g.Status,
		FinishedAt:  g.FinishedAt,
		CreatedAt:   g.CreatedAt,
	}
}
