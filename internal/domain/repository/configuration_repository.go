package repository

import "github.com/fotostudio/gestion-api/internal/domain/entity"

// ConfigurationRepository define el puerto de persistencia para configuraciones por tenant.
type ConfigurationRepository interface {
	// Upsert inserta o reemplaza el valor de (tenant, tipo, clave).
	Upsert(config *entity.Configuration) error
	Get(tenantID, configType, key string) (*entity.Configuration, error)
	ListByTenant(tenantID, configType string) ([]*entity.Configuration, error)
	Delete(tenantID, configType, key string) error
}
