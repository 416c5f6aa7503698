package production_test

import (
	"context"
	"testing"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ordersFixture struct {
	uc     *production.OrdersUseCase
	orders *fakeOrderRepo
	lines  *fakeLineRepo
	stock  *fakeStockRepo
	goods  *fakeGoodRepo
}

func newOrdersFixture(t *testing.T) *ordersFixture {
	t.Helper()
	f := &ordersFixture{
		orders: newFakeOrderRepo(),
		lines:  &fakeLineRepo{},
		stock:  newFakeStockRepo(),
		goods:  newFakeGoodRepo(),
	}
	tx := &fakeTxRunner{orders: f.orders, lines: f.lines, stock: f.stock, mov: &fakeMovementRepo{}, goods: f.goods}
	f.uc = production.NewOrdersUseCase(tx, f.orders, f.lines, f.stock, f.goods, testLogger())
	return f
}

func TestCreateOrder_GeneraNumeroSiFalta(t *testing.T) {
	f := newOrdersFixture(t)

	res, err := f.uc.CreateOrder(context.Background(), testTenant, "ana", dto.CreateProductionOrderRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPendiente, res.Status)
	assert.NotEmpty(t, res.OrderNumber)
	assert.Equal(t, "ana", res.RequestedBy, "sin solicitante explícito se usa el actor")
}

func TestAddMaterial_AcumulaPlanificado(t *testing.T) {
	f := newOrdersFixture(t)
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, OrderNumber: "OP-1", Status: entity.OrderPendiente,
	}))
	require.NoError(t, f.stock.Create(&entity.StockItem{
		ID: "var-1", TenantID: testTenant, Category: entity.CategoryVarilla, OnHand: 50,
	}))

	in := dto.AddOrderMaterialRequest{Category: entity.CategoryVarilla, ItemID: "var-1", Planned: 10}
	_, err := f.uc.AddMaterial(context.Background(), testTenant, "op-1", in)
	require.NoError(t, err)
	line, err := f.uc.AddMaterial(context.Background(), testTenant, "op-1", in)
	require.NoError(t, err)

	assert.Equal(t, int64(20), line.Planned, "planificar dos veces acumula")
	assert.Len(t, f.lines.lines, 1)
}

func TestAddMaterial_OrdenCerradaRechaza(t *testing.T) {
	f := newOrdersFixture(t)
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, Status: entity.OrderCancelada,
	}))

	_, err := f.uc.AddMaterial(context.Background(), testTenant, "op-1", dto.AddOrderMaterialRequest{
		Category: entity.CategoryVarilla, ItemID: "var-1", Planned: 5,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_TransicionValida(t *testing.T) {
	f := newOrdersFixture(t)
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, Status: entity.OrderPendiente,
	}))

	res, err := f.uc.UpdateStatus(context.Background(), testTenant, "op-1", entity.OrderEnProceso)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderEnProceso, res.Status)
}

func TestUpdateStatus_TransicionInvalidaRechaza(t *testing.T) {
	f := newOrdersFixture(t)
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, Status: entity.OrderCompletada,
	}))

	_, err := f.uc.UpdateStatus(context.Background(), testTenant, "op-1", entity.OrderEnProceso)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "completada es terminal")

	_, err = f.uc.UpdateStatus(context.Background(), testTenant, "op-1", "estado_raro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-2", TenantID: testTenant, Status: entity.OrderPendiente,
	}))
	_, err = f.uc.UpdateStatus(context.Background(), testTenant, "op-2", entity.OrderCompletada)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "completar exige pasar por en_proceso")
}

func TestUpdateStatus_CompletarTerminaCuadrosDeLaOrden(t *testing.T) {
	f := newOrdersFixture(t)
	require.NoError(t, f.orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, Status: entity.OrderEnProceso,
	}))
	orderID := "op-1"
	require.NoError(t, f.goods.Create(&entity.FinishedGood{
		ID: "g1", TenantID: testTenant, OrderID: &orderID, Status: entity.GoodEnProduccion,
	}))
	require.NoError(t, f.goods.Create(&entity.FinishedGood{
		ID: "g2", TenantID: testTenant, Status: entity.GoodEnProduccion, // sin orden: no se toca
	}))

	_, err := f.uc.UpdateStatus(context.Background(), testTenant, "op-1", entity.OrderCompletada)
	require.NoError(t, err)

	g1, _ := f.goods.GetByID(testTenant, "g1")
	g2, _ := f.goods.GetByID(testTenant, "g2")
	assert.Equal(t, entity.GoodTerminado, g1.Status)
	assert.Equal(t, entity.GoodEnProduccion, g2.Status)
}

func TestFinishedGood_CicloBasico(t *testing.T) {
	f := newOrdersFixture(t)

	good, err := f.uc.CreateFinishedGood(testTenant, dto.CreateFinishedGoodRequest{Name: "cuadro 40x60"})
	require.NoError(t, err)
	assert.Equal(t, entity.GoodEnProduccion, good.Status)

	status := entity.GoodEnTienda
	updated, err := f.uc.UpdateFinishedGood(testTenant, good.ID, dto.UpdateFinishedGoodRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.GoodEnTienda, updated.Status)
	assert.NotNil(t, updated.FinishedAt, "salir de producción fija fecha de terminación")

	bad := "volando"
	_, err = f.uc.UpdateFinishedGood(testTenant, good.ID, dto.UpdateFinishedGoodRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
