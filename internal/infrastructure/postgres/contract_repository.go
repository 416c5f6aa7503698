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

var _ repository.ContractRepository = (*ContractRepo)(nil)

const contractColumns = `id, tenant_id, client_id, service, kind, start_date, end_date, status, total_value, paid_amount, responsible, notes, created_at, updated_at`

// ContractRepo implementación de ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.TenantID, &c.ClientID, &c.Service, &c.Kind,
		&c.StartDate, &c.EndDate, &c.Status, &c.TotalValue, &c.PaidAmount,
		&c.Responsible, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.TenantID, contract.ClientID, contract.Service, contract.Kind,
		contract.StartDate, contract.EndDate, contract.Status, contract.TotalValue,
		contract.PaidAmount, contract.Responsible, contract.Notes,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato del tenant.
func (r *ContractRepo) GetByID(tenantID, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE tenant_id = $1 AND id = $2`
	c, err := scanContract(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// Update actualiza estado, pagos y datos del contrato.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts
		SET service = $3, kind = $4, start_date = $5, end_date = $6, status = $7,
		    total_value = $8, paid_amount = $9, responsible = $10, notes = $11, updated_at = $12
		WHERE tenant_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		contract.TenantID, contract.ID, contract.Service, contract.Kind,
		contract.StartDate, contract.EndDate, contract.Status,
		contract.TotalValue, contract.PaidAmount, contract.Responsible,
		contract.Notes, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista contratos, más reciente primero, opcionalmente por estado.
func (r *ContractRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + `
		FROM contracts
		WHERE tenant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY start_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
