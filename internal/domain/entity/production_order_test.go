package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
)

// Tabla completa de la máquina de estados de órdenes de producción:
// pendiente -> en_proceso -> completada, cancelada desde pendiente/en_proceso,
// sin salida desde estados terminales.
func TestProductionOrder_CanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderPendiente, entity.OrderEnProceso, true},
		{entity.OrderPendiente, entity.OrderCompletada, false}, // sin atajo: primero en_proceso
		{entity.OrderPendiente, entity.OrderCancelada, true},
		{entity.OrderEnProceso, entity.OrderCompletada, true},
		{entity.OrderEnProceso, entity.OrderCancelada, true},
		{entity.OrderEnProceso, entity.OrderPendiente, false},
		{entity.OrderCompletada, entity.OrderEnProceso, false},
		{entity.OrderCompletada, entity.OrderCancelada, false},
		{entity.OrderCancelada, entity.OrderPendiente, false},
		{entity.OrderCancelada, entity.OrderCompletada, false},
		{entity.OrderPendiente, entity.OrderPendiente, false},
	}
	for _, tc := range cases {
		o := &entity.ProductionOrder{Status: tc.from}
		assert.Equal(t, tc.want, o.CanTransition(tc.to),
			"transición %s -> %s", tc.from, tc.to)
	}
}

func TestContract_PaidPercent(t *testing.T) {
	c := &entity.Contract{
		TotalValue: decimal.NewFromInt(3000),
		PaidAmount: decimal.NewFromInt(1000),
	}
	assert.True(t, decimal.NewFromFloat(33.33).Equal(c.PaidPercent()),
		"1000/3000 debe redondear a 33.33")

	c.TotalValue = decimal.Zero
	assert.True(t, decimal.Zero.Equal(c.PaidPercent()),
		"contrato sin valor no divide por cero")
}

func TestContract_RefreshStatus(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	future := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	c := &entity.Contract{Status: entity.ContratoVigente, EndDate: &past}
	c.RefreshStatus(today)
	assert.Equal(t, entity.ContratoVencido, c.Status, "fecha fin pasada vence el contrato")

	c = &entity.Contract{Status: entity.ContratoVigente, EndDate: &future}
	c.RefreshStatus(today)
	assert.Equal(t, entity.ContratoVigente, c.Status)

	c = &entity.Contract{Status: entity.ContratoRescindido, EndDate: &past}
	c.RefreshStatus(today)
	assert.Equal(t, entity.ContratoRescindido, c.Status, "rescindido es terminal")
}
