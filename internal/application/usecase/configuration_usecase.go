package usecase

import (
	"encoding/json"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/google/uuid"
)

// ConfigurationUseCase casos de uso para configuraciones por tenant.
type ConfigurationUseCase struct {
	repo repository.ConfigurationRepository
}

// NewConfigurationUseCase construye el caso de uso.
func NewConfigurationUseCase(repo repository.ConfigurationRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo}
}

func validConfigType(s string) bool {
	switch s {
	case entity.ConfigBusiness, entity.ConfigSecurity, entity.ConfigSystem, entity.ConfigUI:
		return true
	}
	return false
}

// Upsert inserta o reemplaza el valor de (tipo, clave). El valor debe ser JSON válido.
func (uc *ConfigurationUseCase) Upsert(tenantID, updatedBy string, in dto.UpsertConfigurationRequest) (*dto.ConfigurationResponse, error) {
	if !validConfigType(in.Type) || in.Key == "" {
		return nil, domain.ErrInvalidInput
	}
	if !json.Valid(in.Value) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	config := &entity.Configuration{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Type:      in.Type,
		Key:       in.Key,
		Value:     in.Value,
		UpdatedBy: updatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Upsert(config); err != nil {
		return nil, err
	}
	return toConfigurationResponse(config), nil
}

// Get obtiene un ajuste por tipo y clave.
func (uc *ConfigurationUseCase) Get(tenantID, configType, key string) (*dto.ConfigurationResponse, error) {
	config, err := uc.repo.Get(tenantID, configType, key)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, domain.ErrNotFound
	}
	return toConfigurationResponse(config), nil
}

// List lista los ajustes del tenant, opcionalmente por tipo.
func (uc *ConfigurationUseCase) List(tenantID, configType string) ([]dto.ConfigurationResponse, error) {
	if configType != "" && !validConfigType(configType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByTenant(tenantID, configType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConfigurationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConfigurationResponse(c))
	}
	return items, nil
}

// Delete elimina un ajuste.
func (uc *ConfigurationUseCase) Delete(tenantID, configType, key string) error {
	config, err := uc.repo.Get(tenantID, configType, key)
	if err != nil {
		return err
	}
	if config == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, configType, key)
}

func toConfigurationResponse(c *entity.Configuration) *dto.ConfigurationResponse {
	if c == nil {
		return nil
	}
	return &dto.ConfigurationResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Type:      c.Type,
		Key:       c.Key,
		Value:     c.Value,
		UpdatedBy: c.UpdatedBy,
		UpdatedAt: c.UpdatedAt,
	}
}
