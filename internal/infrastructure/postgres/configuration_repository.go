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

var _ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)

const configurationColumns = `id, tenant_id, type, key, value, updated_by, created_at, updated_at`

// ConfigurationRepo implementación de ConfigurationRepository sobre PostgreSQL.
type ConfigurationRepo struct {
	q Querier
}

// NewConfigurationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfigurationRepository(q Querier) *ConfigurationRepo {
	return &ConfigurationRepo{q: q}
}

func scanConfiguration(row pgx.Row) (*entity.Configuration, error) {
	var c entity.Configuration
	err := row.Scan(&c.ID, &c.TenantID, &c.Type, &c.Key, &c.Value,
		&c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert inserta o reemplaza el valor de (tenant, tipo, clave).
func (r *ConfigurationRepo) Upsert(config *entity.Configuration) error {
	query := `
		INSERT INTO configurations (` + configurationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant_id, type, key)
		DO UPDATE SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		config.ID, config.TenantID, config.Type, config.Key, config.Value,
		config.UpdatedBy, config.CreatedAt, config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert configuration: %w", err)
	}
	return nil
}

// Get obtiene el valor de (tenant, tipo, clave).
func (r *ConfigurationRepo) Get(tenantID, configType, key string) (*entity.Configuration, error) {
	query := `SELECT ` + configurationColumns + `
		FROM configurations WHERE tenant_id = $1 AND type = $2 AND key = $3`
	c, err := scanConfiguration(r.q.QueryRow(context.Background(), query, tenantID, configType, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuration: %w", err)
	}
	return c, nil
}

// ListByTenant lista configuraciones, opcionalmente por tipo.
func (r *ConfigurationRepo) ListByTenant(tenantID, configType string) ([]*entity.Configuration, error) {
	query := `SELECT ` + configurationColumns + `
		FROM configurations
		WHERE tenant_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY type, key`
	rows, err := r.q.Query(context.Background(), query, tenantID, configType)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Configuration
	for rows.Next() {
		c, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuration: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina la clave (tenant, tipo, clave).
func (r *ConfigurationRepo) Delete(tenantID, configType, key string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM configurations WHERE tenant_id = $1 AND type = $2 AND key = $3`,
		tenantID, configType, key)
	if err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
