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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, tenant_id, client_id, order_date, due_date, status, total, created_at, updated_at`

// OrderRepo implementación de OrderRepository (pedidos de cliente) sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.TenantID, &o.ClientID, &o.OrderDate, &o.DueDate,
		&o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TenantID, order.ClientID, order.OrderDate, order.DueDate,
		order.Status, order.Total, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido del tenant.
func (r *OrderRepo) GetByID(tenantID, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND id = $2`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update actualiza estado, fecha de entrega y total del pedido.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET due_date = $3, status = $4, total = $5, updated_at = $6
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		order.TenantID, order.ID, order.DueDate, order.Status, order.Total, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista pedidos, más reciente primero, opcionalmente por estado.
func (r *OrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY order_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

const orderDetailColumns = `id, order_id, category, item_id, quantity, unit_price, subtotal, created_at`

// CreateDetail persiste una línea de pedido.
func (r *OrderRepo) CreateDetail(detail *entity.OrderDetail) error {
	query := `
		INSERT INTO order_details (` + orderDetailColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.OrderID, detail.Category, detail.ItemID,
		detail.Quantity, detail.UnitPrice, detail.Subtotal, detail.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

// ListDetails lista las líneas de un pedido.
func (r *OrderRepo) ListDetails(orderID string) ([]*entity.OrderDetail, error) {
	query := `SELECT ` + orderDetailColumns + ` FROM order_details WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		err := rows.Scan(&d.ID, &d.OrderID, &d.Category, &d.ItemID,
			&d.Quantity, &d.UnitPrice, &d.Subtotal, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
