package usecase

import (
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderUseCase casos de uso para pedidos de cliente. El total se calcula
// siempre desde las líneas, nunca llega del cliente.
type OrderUseCase struct {
	repo       repository.OrderRepository
	clientRepo repository.ClientRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, clientRepo repository.ClientRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, clientRepo: clientRepo}
}

// Create registra un pedido con sus líneas.
func (uc *OrderUseCase) Create(tenantID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(tenantID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	for _, d := range in.Details {
		if !entity.ValidCategory(d.Category) {
			return nil, domain.ErrInvalidCategory
		}
		if d.ItemID == "" || d.Quantity <= 0 || d.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ClientID:  in.ClientID,
		OrderDate: now,
		DueDate:   in.DueDate,
		Status:    entity.PedidoPendiente,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	details := make([]*entity.OrderDetail, 0, len(in.Details))
	for _, d := range in.Details {
		subtotal := d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity))
		details = append(details, &entity.OrderDetail{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Category:  d.Category,
			ItemID:    d.ItemID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  subtotal,
			CreatedAt: now,
		})
		order.Total = order.Total.Add(subtotal)
	}

	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	for _, d := range details {
		if err := uc.repo.CreateDetail(d); err != nil {
			return nil, err
		}
	}
	return toOrderResponse(order, details), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(tenantID, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.repo.ListDetails(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

// canTransitionPedido máquina de estados de pedidos:
// pendiente -> en_proceso -> entregado; cancelado desde pendiente o en_proceso.
func canTransitionPedido(from, to string) bool {
	switch from {
	case entity.PedidoPendiente:
		return to == entity.PedidoEnProceso || to == entity.PedidoEntregado || to == entity.PedidoCancelado
	case entity.PedidoEnProceso:
		return to == entity.PedidoEntregado || to == entity.PedidoCancelado
	}
	return false
}

// Update cambia estado o fecha de entrega del pedido.
func (uc *OrderUseCase) Update(tenantID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && *in.Status != order.Status {
		switch *in.Status {
		case entity.PedidoPendiente, entity.PedidoEnProceso, entity.PedidoEntregado, entity.PedidoCancelado:
		default:
			return nil, domain.ErrInvalidInput
		}
		if !canTransitionPedido(order.Status, *in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		order.Status = *in.Status
	}
	if in.DueDate != nil {
		order.DueDate = in.DueDate
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	details, err := uc.repo.ListDetails(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

// List lista pedidos del tenant, opcionalmente por estado.
func (uc *OrderUseCase) List(tenantID, status string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	if status != "" {
		switch status {
		case entity.PedidoPendiente, entity.PedidoEnProceso, entity.PedidoEntregado, entity.PedidoCancelado:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	orders, err := uc.repo.ListByTenant(tenantID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toOrderResponse(o *entity.Order, details []*entity.OrderDetail) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	res := &dto.OrderResponse{
		ID:        o.ID,
		TenantID:  o.TenantID,
		ClientID:  o.ClientID,
		OrderDate: o.OrderDate,
		DueDate:   o.DueDate,
		Status:    o.Status,
		Total:     o.Total,
	}
	for _, d := range details {
		res.Details = append(res.Details, dto.OrderDetailResponse{
			ID:        d.ID,
			Category:  d.Category,
			ItemID:    d.ItemID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return res
}
