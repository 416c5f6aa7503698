package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntrada       = "entrada"
	MovementSalida        = "salida"
	MovementAjuste        = "ajuste"
	MovementTransferencia = "transferencia"
	MovementMerma         = "merma"
	MovementUsoProduccion = "uso_produccion"
)

// ValidMovementKind reporta si s es un tipo de movimiento conocido.
func ValidMovementKind(s string) bool {
	switch s {
	case MovementEntrada, MovementSalida, MovementAjuste,
		MovementTransferencia, MovementMerma, MovementUsoProduccion:
		return true
	}
	return false
}

// Movement representa un registro inmutable del libro de movimientos.
// Quantity siempre se guarda positiva; entrada y salida llevan la dirección
// en el tipo, y los ajustes guardan el valor absoluto del delta aplicado.
// Cada cambio de stock exitoso escribe exactamente un movimiento con la
// cantidad efectivamente aplicada, dentro de la misma transacción.
type Movement struct {
	ID                string
	TenantID          string
	Category          string
	ItemID            string
	Kind              string
	Quantity          int64
	Reason            string
	ProductionOrderID *string // opcional, para uso_produccion y merma
	Actor             string  // etiqueta del usuario que originó el movimiento
	Date              time.Time
	CreatedAt         time.Time
}
