package entity

import "time"

// Estados válidos para Tenant.
const (
	TenantActive    = "active"
	TenantInactive  = "inactive"
	TenantSuspended = "suspended"
)

// Tenant representa un estudio (partición aislada de datos).
// Toda fila de toda tabla pertenece a exactamente un tenant.
type Tenant struct {
	ID        string
	Name      string
	Subdomain string // único global
	Status    string // active, inactive, suspended
	CreatedAt time.Time
	UpdatedAt time.Time
}
