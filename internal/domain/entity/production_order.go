package entity

import "time"

// Estados de una orden de producción.
const (
	OrderPendiente  = "pendiente"
	OrderEnProceso  = "en_proceso"
	OrderCompletada = "completada"
	OrderCancelada  = "cancelada"
)

// ProductionOrder representa una orden de trabajo que consume materiales
// para producir cuadros u otros productos terminados.
type ProductionOrder struct {
	ID             string
	TenantID       string
	OrderNumber    string
	RequestedBy    string
	ResponsibleFor string // responsable de producción
	Status         string
	Notes          string
	CreatedDate    time.Time
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransition valida la máquina de estados:
// pendiente -> en_proceso -> completada; cancelada desde pendiente o en_proceso.
// completada y cancelada son terminales. No hay atajo pendiente -> completada:
// una orden debe pasar por en_proceso antes de completarse.
func (o *ProductionOrder) CanTransition(to string) bool {
	switch o.Status {
	case OrderPendiente:
		return to == OrderEnProceso || to == OrderCancelada
	case OrderEnProceso:
		return to == OrderCompletada || to == OrderCancelada
	}
	return false
}

// ProductionLine acumula las cantidades planificada, usada y de merma de un
// material dentro de una orden. Los registros repetidos suman, no reemplazan.
type ProductionLine struct {
	ID        string
	OrderID   string
	Category  string
	ItemID    string
	Planned   int64
	Consumed  int64
	Waste     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
