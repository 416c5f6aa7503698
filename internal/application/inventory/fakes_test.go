package inventory_test

import (
	"context"

	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
)

// Fakes en memoria para probar los casos de uso sin base de datos.
// El TxRunner falso emula rollback restaurando un snapshot si fn falla.

type fakeStockRepo struct {
	items map[string]*entity.StockItem // key: tenantID + "/" + id
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
	k := r.key(item.TenantID, item.ID)
	if _, ok := r.items[k]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[k] = &cp
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
	var out []*entity.StockItem
	for _, item := range r.items {
		if item.TenantID != tenantID {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) Delete(tenantID, id string) error {
	delete(r.items, r.key(tenantID, id))
	return nil
}

func (r *fakeStockRepo) snapshot() map[string]*entity.StockItem {
	snap := make(map[string]*entity.StockItem, len(r.items))
	for k, v := range r.items {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(tenantID, id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.TenantID == tenantID && m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByTenant(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.TenantID != tenantID {
			continue
		}
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
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

// fakeTxRunner pasa los fakes a fn y revierte el estado del stock y del libro
// si fn devuelve error, igual que haría un rollback real.
type fakeTxRunner struct {
	stock *fakeStockRepo
	mov   *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	snapItems := tx.stock.snapshot()
	snapMovs := len(tx.mov.movements)
	if err := fn(tx.stock, tx.mov); err != nil {
		tx.stock.items = snapItems
		tx.mov.movements = tx.mov.movements[:snapMovs]
		return err
	}
	return nil
}
