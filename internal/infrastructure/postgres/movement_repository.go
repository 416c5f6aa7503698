package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, tenant_id, category, item_id, kind, quantity, reason, production_order_id, actor, date, created_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// La tabla es de solo inserción: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.TenantID, &m.Category, &m.ItemID, &m.Kind, &m.Quantity,
		&m.Reason, &m.ProductionOrderID, &m.Actor, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta un registro en el libro de movimientos.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TenantID, movement.Category, movement.ItemID,
		movement.Kind, movement.Quantity, movement.Reason, movement.ProductionOrderID,
		movement.Actor, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento del tenant.
func (r *MovementRepo) GetByID(tenantID, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE tenant_id = $1 AND id = $2`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByTenant consulta el libro con filtros opcionales, más reciente primero.
func (r *MovementRepo) ListByTenant(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE tenant_id = $1
		  AND ($2 = '' OR category = $2)
		  AND ($3 = '' OR item_id = $3)
		  AND ($4 = '' OR kind = $4)
		  AND ($5::timestamptz IS NULL OR date >= $5)
		  AND ($6::timestamptz IS NULL OR date < $6)
		ORDER BY date DESC
		LIMIT $7 OFFSET $8`
	rows, err := r.q.Query(context.Background(), query,
		tenantID, filter.Category, filter.ItemID, filter.Kind, filter.From, filter.To,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
