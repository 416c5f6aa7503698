package production_test

import (
	"context"
	"testing"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type usageFixture struct {
	uc     *production.RegisterUsageUseCase
	orders *fakeOrderRepo
	lines  *fakeLineRepo
	stock  *fakeStockRepo
	mov    *fakeMovementRepo
	notif  *fakeNotifRepo
}

func newUsageFixture(t *testing.T) *usageFixture {
	t.Helper()
	f := &usageFixture{
		orders: newFakeOrderRepo(),
		lines:  &fakeLineRepo{},
		stock:  newFakeStockRepo(),
		mov:    &fakeMovementRepo{},
		notif:  &fakeNotifRepo{},
	}
	tx := &fakeTxRunner{orders: f.orders, lines: f.lines, stock: f.stock, mov: f.mov, goods: newFakeGoodRepo()}
	f.uc = production.NewRegisterUsageUseCase(tx, f.notif, testLogger())
	return f
}

func (f *usageFixture) seedOrder(t *testing.T, id, status string) {
	t.Helper()
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: id, TenantID: testTenant, OrderNumber: "OP-" + id, Status: status,
	}))
}

func (f *usageFixture) seedItem(t *testing.T, id string, onHand, reorder int64) {
	t.Helper()
	require.NoError(t, f.stock.Create(&entity.StockItem{
		ID: id, TenantID: testTenant, Category: entity.CategoryVarilla,
		Name: "varilla " + id, OnHand: onHand, ReorderLevel: reorder,
	}))
}

func TestRegisterUsage_DescuentaUsadoMasMerma(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 10, 2)

	line, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 4,
		Waste:    1,
	})
	require.NoError(t, err)

	item, _ := f.stock.GetByID(testTenant, "var-1")
	assert.Equal(t, int64(5), item.OnHand, "se descuenta usado + merma")
	assert.Equal(t, int64(4), line.Consumed)
	assert.Equal(t, int64(1), line.Waste)
}

func TestRegisterUsage_EscribeDosMovimientosConOrden(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 10, 2)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 4,
		Waste:    1,
	})
	require.NoError(t, err)

	require.Len(t, f.mov.movements, 2)
	uso, merma := f.mov.movements[0], f.mov.movements[1]
	assert.Equal(t, entity.MovementUsoProduccion, uso.Kind)
	assert.Equal(t, int64(4), uso.Quantity)
	assert.Equal(t, entity.MovementMerma, merma.Kind)
	assert.Equal(t, int64(1), merma.Quantity)
	require.NotNil(t, uso.ProductionOrderID)
	require.NotNil(t, merma.ProductionOrderID)
	assert.Equal(t, "op-1", *uso.ProductionOrderID)
	assert.Equal(t, "op-1", *merma.ProductionOrderID)
}

func TestRegisterUsage_SinMermaSoloUnMovimiento(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 10, 2)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 3,
	})
	require.NoError(t, err)
	require.Len(t, f.mov.movements, 1)
	assert.Equal(t, entity.MovementUsoProduccion, f.mov.movements[0].Kind)
}

func TestRegisterUsage_RegistrosRepetidosAcumulan(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 20, 2)

	in := dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 4,
		Waste:    1,
	}
	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", in)
	require.NoError(t, err)
	line, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", in)
	require.NoError(t, err)

	assert.Equal(t, int64(8), line.Consumed, "acumula, no reemplaza")
	assert.Equal(t, int64(2), line.Waste)

	item, _ := f.stock.GetByID(testTenant, "var-1")
	assert.Equal(t, int64(10), item.OnHand)
	assert.Len(t, f.lines.lines, 1, "una sola línea por (orden, material)")
}

func TestRegisterUsage_StockInsuficienteParaElTotalRechaza(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 4, 1)

	// usado solo cabría, pero usado + merma no
	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 4,
		Waste:    1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ := f.stock.GetByID(testTenant, "var-1")
	assert.Equal(t, int64(4), item.OnHand)
	assert.Empty(t, f.mov.movements)
	assert.Empty(t, f.lines.lines)
}

func TestRegisterUsage_OrdenPendientePasaAEnProceso(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderPendiente)
	f.seedItem(t, "var-1", 10, 2)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 1,
	})
	require.NoError(t, err)

	order, _ := f.orders.GetByID(testTenant, "op-1")
	assert.Equal(t, entity.OrderEnProceso, order.Status)
}

func TestRegisterUsage_OrdenCerradaRechaza(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderCompletada)
	f.seedItem(t, "var-1", 10, 2)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterUsage_Validaciones(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 10, 2)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID: "op-1", Category: "otra_cosa", ItemID: "var-1", Consumed: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID: "op-1", Category: entity.CategoryVarilla, ItemID: "var-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "usado y merma en cero no registra nada")

	_, err = f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID: "op-1", Category: entity.CategoryVarilla, ItemID: "var-1", Consumed: -1, Waste: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID: "no-existe", Category: entity.CategoryVarilla, ItemID: "var-1", Consumed: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUsage_NotificaStockBajoTrasConsumo(t *testing.T) {
	f := newUsageFixture(t)
	f.seedOrder(t, "op-1", entity.OrderEnProceso)
	f.seedItem(t, "var-1", 6, 4)

	_, err := f.uc.RegisterUsage(context.Background(), testTenant, "pedro", dto.RegisterUsageRequest{
		OrderID:  "op-1",
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Consumed: 2, // queda en 4 == mínimo
	})
	require.NoError(t, err)
	require.Len(t, f.notif.created, 1)
	assert.Equal(t, entity.NotifAlerta, f.notif.created[0].Type)
}
