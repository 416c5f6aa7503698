package production_test

import (
	"context"

	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
)

// Fakes en memoria para probar los casos de uso de producción sin base de
// datos. El TxRunner falso emula rollback restaurando snapshots si fn falla.

type fakeStockRepo struct {
	items map[string]*entity.StockItem
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{items: make(map[string]*entity.StockItem)}
}

func (r *fakeStockRepo) key(tenantID, id string) string { return tenantID + "/" + id }

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	cp := *item
	r.items[r.key(item.TenantID, item.ID)] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(tenantID, id string) (*entity.StockItem, error) {
	item, ok := r.items[r.key(tenantID, id)]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(tenantID, id string) (*entity.StockItem, error) {
	return r.GetByID(tenantID, id)
}

func (r *fakeStockRepo) Update(item *entity.StockItem) error {
	cp := *item
	r.items[r.key(item.TenantID, item.ID)] = &cp
	return nil
}

func (r *fakeStockRepo) SetOnHand(tenantID, id string, onHand int64) error {
	item, ok := r.items[r.key(tenantID, id)]
	if !ok {
		return domain.ErrNotFound
	}
	item.OnHand = onHand
	return nil
}

func (r *fakeStockRepo) ListByTenant(tenantID, category string, limit, offset int) ([]*entity.StockItem, error) {
	return nil, nil
}

func (r *fakeStockRepo) Delete(tenantID, id string) error {
	delete(r.items, r.key(tenantID, id))
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.ProductionOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.ProductionOrder)}
}

func (r *fakeOrderRepo) Create(o *entity.ProductionOrder) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(tenantID, id string) (*entity.ProductionOrder, error) {
	o, ok := r.orders[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Update(o *entity.ProductionOrder) error {
	if _, ok := r.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.ProductionOrder, error) {
	var out []*entity.ProductionOrder
	for _, o := range r.orders {
		if o.TenantID != tenantID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeLineRepo struct {
	lines []*entity.ProductionLine
}

func (r *fakeLineRepo) Create(l *entity.ProductionLine) error {
	cp := *l
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *fakeLineRepo) GetByOrderAndItem(orderID, category, itemID string) (*entity.ProductionLine, error) {
	for _, l := range r.lines {
		if l.OrderID == orderID && l.Category == category && l.ItemID == itemID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLineRepo) Update(l *entity.ProductionLine) error {
	for i, existing := range r.lines {
		if existing.ID == l.ID {
			cp := *l
			r.lines[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeLineRepo) ListByOrder(orderID string) ([]*entity.ProductionLine, error) {
	var out []*entity.ProductionLine
	for _, l := range r.lines {
		if l.OrderID == orderID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeGoodRepo struct {
	goods map[string]*entity.FinishedGood
}

func newFakeGoodRepo() *fakeGoodRepo {
	return &fakeGoodRepo{goods: make(map[string]*entity.FinishedGood)}
}

func (r *fakeGoodRepo) Create(g *entity.FinishedGood) error {
	cp := *g
	r.goods[g.ID] = &cp
	return nil
}

func (r *fakeGoodRepo) GetByID(tenantID, id string) (*entity.FinishedGood, error) {
	g, ok := r.goods[id]
	if !ok || g.TenantID != tenantID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoodRepo) Update(g *entity.FinishedGood) error {
	if _, ok := r.goods[g.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *g
	r.goods[g.ID] = &cp
	return nil
}

func (r *fakeGoodRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.FinishedGood, error) {
	var out []*entity.FinishedGood
	for _, g := range r.goods {
		if g.TenantID != tenantID {
			continue
		}
		if status != "" && g.Status != status {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeGoodRepo) MarkFinishedByOrder(tenantID, orderID string) (int64, error) {
	var n int64
	for _, g := range r.goods {
		if g.TenantID == tenantID && g.OrderID != nil && *g.OrderID == orderID && g.Status == entity.GoodEnProduccion {
			g.Status = entity.GoodTerminado
			n++
		}
	}
	return n, nil
}

type fakeNotifRepo struct {
	created []*entity.Notification
}

func (r *fakeNotifRepo) Create(n *entity.Notification) error {
	cp := *n
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeNotifRepo) GetByID(tenantID, id string) (*entity.Notification, error) { return nil, nil }

func (r *fakeNotifRepo) ListByTenant(tenantID, userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	return r.created, nil
}

func (r *fakeNotifRepo) MarkRead(tenantID, id string) error { return nil }
func (r *fakeNotifRepo) Delete(tenantID, id string) error   { return nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(tenantID, id string) (*entity.Movement, error) { return nil, nil }

func (r *fakeMovementRepo) ListByTenant(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	return r.movements, nil
}

// fakeTxRunner pasa los fakes a fn y revierte stock, órdenes, líneas y libro
// si fn devuelve error.
type fakeTxRunner struct {
	orders *fakeOrderRepo
	lines  *fakeLineRepo
	stock  *fakeStockRepo
	mov    *fakeMovementRepo
	goods  *fakeGoodRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ProductionOrderRepository,
	lineRepo repository.ProductionLineRepository,
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	goodRepo repository.FinishedGoodRepository,
) error) error {
	snapStock := make(map[string]*entity.StockItem, len(tx.stock.items))
	for k, v := range tx.stock.items {
		cp := *v
		snapStock[k] = &cp
	}
	snapOrders := make(map[string]*entity.ProductionOrder, len(tx.orders.orders))
	for k, v := range tx.orders.orders {
		cp := *v
		snapOrders[k] = &cp
	}
	snapLines := make([]*entity.ProductionLine, len(tx.lines.lines))
	for i, l := range tx.lines.lines {
		cp := *l
		snapLines[i] = &cp
	}
	snapMovs := len(tx.mov.movements)

	if err := fn(tx.orders, tx.lines, tx.stock, tx.mov, tx.goods); err != nil {
		tx.stock.items = snapStock
		tx.orders.orders = snapOrders
		tx.lines.lines = snapLines
		tx.mov.movements = tx.mov.movements[:snapMovs]
		return err
	}
	return nil
}
