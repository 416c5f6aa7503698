package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de contrato.
const (
	ContratoVigente    = "vigente"
	ContratoVencido    = "vencido"
	ContratoRescindido = "rescindido"
)

// Contract representa un contrato de servicios con un cliente
// (por ejemplo fotografía escolar anual).
type Contract struct {
	ID          string
	TenantID    string
	ClientID    string
	Service     string
	Kind        string // Anual, Semestral, Mensual
	StartDate   time.Time
	EndDate     *time.Time
	Status      string
	TotalValue  decimal.Decimal
	PaidAmount  decimal.Decimal
	Responsible string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaidPercent devuelve el porcentaje pagado redondeado a 2 decimales (0 si el valor es 0).
func (c *Contract) PaidPercent() decimal.Decimal {
	if !c.TotalValue.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return c.PaidAmount.Div(c.TotalValue).Mul(decimal.NewFromInt(100)).Round(2)
}

// Outstanding devuelve el saldo pendiente del contrato.
func (c *Contract) Outstanding() decimal.Decimal {
	return c.TotalValue.Sub(c.PaidAmount)
}

// RefreshStatus actualiza el estado según la fecha de fin (vencido si ya pasó).
func (c *Contract) RefreshStatus(today time.Time) {
	if c.Status == ContratoRescindido {
		return
	}
	if c.EndDate != nil && today.After(*c.EndDate) {
		c.Status = ContratoVencido
		return
	}
	c.Status = ContratoVigente
}
