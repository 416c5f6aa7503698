package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, tenant_id, category, name, spec, color, on_hand, reorder_level, unit_price, location, expires_at, created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(
		&s.ID, &s.TenantID, &s.Category, &s.Name, &s.Spec, &s.Color,
		&s.OnHand, &s.ReorderLevel, &s.UnitPrice, &s.Location, &s.ExpiresAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un material nuevo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.Category, item.Name, item.Spec, item.Color,
		item.OnHand, item.ReorderLevel, item.UnitPrice, item.Location, item.ExpiresAt,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un material del tenant.
func (r *StockItemRepo) GetByID(tenantID, id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE tenant_id = $1 AND id = $2`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el material y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockItemRepo) GetForUpdate(tenantID, id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// Update actualiza los datos descriptivos. on_hand no se toca por aquí.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $3, spec = $4, color = $5, reorder_level = $6, unit_price = $7,
		    location = $8, expires_at = $9, updated_at = $10
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		item.TenantID, item.ID, item.Name, item.Spec, item.Color,
		item.ReorderLevel, item.UnitPrice, item.Location, item.ExpiresAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetOnHand actualiza solo la cantidad disponible (tras un movimiento aplicado).
func (r *StockItemRepo) SetOnHand(tenantID, id string, onHand int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET on_hand = $3, updated_at = now() WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, onHand,
	)
	if err != nil {
		return fmt.Errorf("set on hand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista materiales del tenant, opcionalmente por categoría.
func (r *StockItemRepo) ListByTenant(tenantID, category string, limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + `
		FROM stock_items WHERE tenant_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY category, name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Delete elimina un material del catálogo.
func (r *StockItemRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_items WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}
