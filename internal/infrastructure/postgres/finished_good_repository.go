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

var _ repository.FinishedGoodRepository = (*FinishedGoodRepo)(nil)

const finishedGoodColumns = `id, tenant_id, order_id, name, description, dimensions, sale_price, location, status, finished_at, created_at, updated_at`

// FinishedGoodRepo implementación de FinishedGoodRepository sobre PostgreSQL.
type FinishedGoodRepo struct {
	q Querier
}

// NewFinishedGoodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinishedGoodRepository(q Querier) *FinishedGoodRepo {
	return &FinishedGoodRepo{q: q}
}

func scanFinishedGood(row pgx.Row) (*entity.FinishedGood, error) {
	var g entity.FinishedGood
	err := row.Scan(
		&g.ID, &g.TenantID, &g.OrderID, &g.Name, &g.Description, &g.Dimensions,
		&g.SalePrice, &g.Location, &g.Status, &g.FinishedAt, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create persiste un cuadro.
func (r *FinishedGoodRepo) Create(good *entity.FinishedGood) error {
	query := `
		INSERT INTO finished_goods (` + finishedGoodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		good.ID, good.TenantID, good.OrderID, good.Name, good.Description, good.Dimensions,
		good.SalePrice, good.Location, good.Status, good.FinishedAt, good.CreatedAt, good.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert finished good: %w", err)
	}
	return nil
}

// GetByID obtiene un cuadro del tenant.
func (r *FinishedGoodRepo) GetByID(tenantID, id string) (*entity.FinishedGood, error) {
	query := `SELECT ` + finishedGoodColumns + ` FROM finished_goods WHERE tenant_id = $1 AND id = $2`
	g, err := scanFinishedGood(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finished good: %w", err)
	}
	return g, nil
}

// Update actualiza datos y estado de un cuadro.
func (r *FinishedGoodRepo) Update(good *entity.FinishedGood) error {
	query := `
		UPDATE finished_goods
		SET name = $3, description = $4, dimensions = $5, sale_price = $6,
		    location = $7, status = $8, finished_at = $9, updated_at = $10
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		good.TenantID, good.ID, good.Name, good.Description, good.Dimensions,
		good.SalePrice, good.Location, good.Status, good.FinishedAt, good.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update finished good: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista cuadros, opcionalmente por estado.
func (r *FinishedGoodRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.FinishedGood, error) {
	query := `SELECT ` + finishedGoodColumns + `
		FROM finished_goods
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list finished goods: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinishedGood
	for rows.Next() {
		g, err := scanFinishedGood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan finished good: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// MarkFinishedByOrder pasa a terminado los cuadros en producción de la orden.
func (r *FinishedGoodRepo) MarkFinishedByOrder(tenantID, orderID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE finished_goods
		SET status = 'terminado', finished_at = now(), updated_at = now()
		WHERE tenant_id = $1 AND order_id = $2 AND status = 'en_produccion'`,
		tenantID, orderID,
	)
	if err != nil {
		return 0, fmt.Errorf("mark finished by order: %w", err)
	}
	return cmd.RowsAffected(), nil
}
