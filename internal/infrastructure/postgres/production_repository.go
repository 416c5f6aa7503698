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

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)
var _ repository.ProductionLineRepository = (*ProductionLineRepo)(nil)

const productionOrderColumns = `id, tenant_id, order_number, requested_by, responsible_for, status, notes, created_date, due_date, created_at, updated_at`

// ProductionOrderRepo implementación de ProductionOrderRepository sobre PostgreSQL.
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

func scanProductionOrder(row pgx.Row) (*entity.ProductionOrder, error) {
	var o entity.ProductionOrder
	err := row.Scan(
		&o.ID, &o.TenantID, &o.OrderNumber, &o.RequestedBy, &o.ResponsibleFor,
		&o.Status, &o.Notes, &o.CreatedDate, &o.DueDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden de producción.
func (r *ProductionOrderRepo) Create(order *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (` + productionOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.OrderNumber, order.RequestedBy, order.ResponsibleFor,
		order.Status, order.Notes, order.CreatedDate, order.DueDate, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden del tenant.
func (r *ProductionOrderRepo) GetByID(tenantID, id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + ` FROM production_orders WHERE tenant_id = $1 AND id = $2`
	o, err := scanProductionOrder(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return o, nil
}

// Update actualiza estado y datos de la orden.
func (r *ProductionOrderRepo) Update(order *entity.ProductionOrder) error {
	query := `
		UPDATE production_orders
		SET requested_by = $3, responsible_for = $4, status = $5, notes = $6, due_date = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		order.TenantID, order.ID, order.RequestedBy, order.ResponsibleFor,
		order.Status, order.Notes, order.DueDate, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista órdenes, más reciente primero, opcionalmente por estado.
func (r *ProductionOrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + `
		FROM production_orders
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionOrder
	for rows.Next() {
		o, err := scanProductionOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

const productionLineColumns = `id, order_id, category, item_id, planned, consumed, waste, created_at, updated_at`

// ProductionLineRepo implementación de ProductionLineRepository sobre PostgreSQL.
type ProductionLineRepo struct {
	q Querier
}

// NewProductionLineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionLineRepository(q Querier) *ProductionLineRepo {
	return &ProductionLineRepo{q: q}
}

func scanProductionLine(row pgx.Row) (*entity.ProductionLine, error) {
	var l entity.ProductionLine
	err := row.Scan(
		&l.ID, &l.OrderID, &l.Category, &l.ItemID,
		&l.Planned, &l.Consumed, &l.Waste, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una línea de material de orden.
func (r *ProductionLineRepo) Create(line *entity.ProductionLine) error {
	query := `
		INSERT INTO production_order_lines (` + productionLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.Category, line.ItemID,
		line.Planned, line.Consumed, line.Waste, line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production line: %w", err)
	}
	return nil
}

// GetByOrderAndItem devuelve la línea de (orden, categoría, item), o nil si no existe.
func (r *ProductionLineRepo) GetByOrderAndItem(orderID, category, itemID string) (*entity.ProductionLine, error) {
	query := `SELECT ` + productionLineColumns + `
		FROM production_order_lines WHERE order_id = $1 AND category = $2 AND item_id = $3`
	l, err := scanProductionLine(r.q.QueryRow(context.Background(), query, orderID, category, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production line: %w", err)
	}
	return l, nil
}

// Update actualiza los acumulados de la línea.
func (r *ProductionLineRepo) Update(line *entity.ProductionLine) error {
	query := `
		UPDATE production_order_lines
		SET planned = $2, consumed = $3, waste = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		line.ID, line.Planned, line.Consumed, line.Waste, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOrder lista las líneas de una orden.
func (r *ProductionLineRepo) ListByOrder(orderID string) ([]*entity.ProductionLine, error) {
	query := `SELECT ` + productionLineColumns + `
		FROM production_order_lines WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list production lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionLine
	for rows.Next() {
		l, err := scanProductionLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
