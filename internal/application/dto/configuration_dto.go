package dto

import (
	"encoding/json"
	"time"
)

// UpsertConfigurationRequest body para PUT /api/configurations.
type UpsertConfigurationRequest struct {
	Type  string          `json:"config_type"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ConfigurationResponse representación de un ajuste.
type ConfigurationResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Type      string          `json:"config_type"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedBy string          `json:"updated_by,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
