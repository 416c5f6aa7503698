package entity

import (
	"encoding/json"
	"time"
)

// Tipos de configuración.
const (
	ConfigBusiness = "business"
	ConfigSecurity = "security"
	ConfigSystem   = "system"
	ConfigUI       = "ui"
)

// Configuration es un ajuste tipado por tenant (clave única por tenant+tipo+clave).
type Configuration struct {
	ID        string
	TenantID  string
	Type      string // business, security, system, ui
	Key       string
	Value     json.RawMessage
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
