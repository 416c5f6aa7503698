package entity

import "time"

// Tipos de cliente.
const (
	ClientPersona = "persona"
	ClientEmpresa = "empresa"
	ClientOtro    = "otro"
)

// Client representa un cliente del estudio (persona natural o empresa).
type Client struct {
	ID          string
	TenantID    string
	Name        string
	Type        string // persona, empresa, otro
	Contact     string
	CompanyName string
	Address     string
	Email       string
	Phone       string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
