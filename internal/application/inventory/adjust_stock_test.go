package inventory_test

import (
	"context"
	"testing"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
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

func seedItem(t *testing.T, stock *fakeStockRepo, id, category string, onHand, reorder int64) {
	t.Helper()
	err := stock.Create(&entity.StockItem{
		ID:           id,
		TenantID:     testTenant,
		Category:     category,
		Name:         "material " + id,
		OnHand:       onHand,
		ReorderLevel: reorder,
	})
	require.NoError(t, err)
}

func newAdjustFixture(t *testing.T) (*inventory.AdjustStockUseCase, *fakeStockRepo, *fakeMovementRepo, *fakeNotifRepo) {
	t.Helper()
	stock := newFakeStockRepo()
	mov := &fakeMovementRepo{}
	notif := &fakeNotifRepo{}
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{stock: stock, mov: mov}, notif, testLogger())
	return uc, stock, mov, notif
}

func TestAdjustStock_DeltaPositivoSumaYRegistraAjuste(t *testing.T) {
	uc, stock, mov, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)

	item, movement, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Quantity: 5,
		Reason:   "compra",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), item.OnHand)
	require.Len(t, mov.movements, 1)
	assert.Equal(t, entity.MovementAjuste, movement.Kind, "un ajuste manual no se registra como entrada")
	assert.Equal(t, int64(5), movement.Quantity, "la cantidad del movimiento se guarda positiva")
	assert.Equal(t, "compra", movement.Reason)
	assert.Equal(t, "ana", movement.Actor)
}

func TestAdjustStock_DeltaNegativoDescuentaYRegistraAjuste(t *testing.T) {
	uc, stock, _, _ := newAdjustFixture(t)
	seedItem(t, stock, "pin-1", entity.CategoryPinturaAcabado, 8, 2)

	item, movement, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryPinturaAcabado,
		ItemID:   "pin-1",
		Quantity: -3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), item.OnHand)
	assert.Equal(t, entity.MovementAjuste, movement.Kind, "un ajuste manual no se registra como salida")
	assert.Equal(t, int64(3), movement.Quantity, "el movimiento guarda el valor absoluto del delta")
	assert.Equal(t, "ajuste manual", movement.Reason, "motivo por defecto cuando no llega")
}

func TestAdjustStock_SobregiroSeRechazaSinEscribirNada(t *testing.T) {
	uc, stock, mov, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 4, 1)

	_, _, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Quantity: -5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, _ := stock.GetByID(testTenant, "var-1")
	assert.Equal(t, int64(4), after.OnHand, "el stock no debe cambiar al rechazar")
	assert.Empty(t, mov.movements, "el libro no debe registrar el intento rechazado")
}

func TestAdjustStock_SalidaExactaACeroPermitida(t *testing.T) {
	uc, stock, _, _ := newAdjustFixture(t)
	seedItem(t, stock, "imp-1", entity.CategoryMaterialImpresion, 5, 0)

	item, _, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryMaterialImpresion,
		ItemID:   "imp-1",
		Quantity: -5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.OnHand)
}

func TestAdjustStock_ValidacionesDeEntrada(t *testing.T) {
	uc, stock, _, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)

	_, _, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: "categoria_inventada",
		ItemID:   "var-1",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, _, err = uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "no-existe",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustStock_NotificaAlQuedarBajoUmbral(t *testing.T) {
	uc, stock, _, notif := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 5, 3)

	_, _, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Quantity: -2, // queda en 3 == stock mínimo: umbral inclusivo
	})
	require.NoError(t, err)

	require.Len(t, notif.created, 1)
	assert.Equal(t, entity.NotifAlerta, notif.created[0].Type)
	assert.Equal(t, entity.PriorityHigh, notif.created[0].Priority)
	assert.Nil(t, notif.created[0].UserID, "la alerta es para todos los usuarios del tenant")
}

func TestAdjustStock_NoNotificaSobreElUmbral(t *testing.T) {
	uc, stock, _, notif := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)

	_, _, err := uc.AdjustStock(context.Background(), testTenant, "ana", dto.AdjustStockRequest{
		Category: entity.CategoryVarilla,
		ItemID:   "var-1",
		Quantity: -2, // queda en 8, sobre el mínimo
	})
	require.NoError(t, err)
	assert.Empty(t, notif.created)
}

func TestRegisterEntries_LoteAplicaTodasLasLineas(t *testing.T) {
	uc, stock, mov, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)
	seedItem(t, stock, "pin-1", entity.CategoryPinturaAcabado, 2, 1)

	movs, err := uc.RegisterEntries(context.Background(), testTenant, "ana", dto.BatchEntryRequest{
		Materials: []dto.MaterialEntry{
			{Category: entity.CategoryVarilla, ItemID: "var-1", Quantity: 4},
			{Category: entity.CategoryPinturaAcabado, ItemID: "pin-1", Quantity: 6},
		},
	})
	require.NoError(t, err)
	assert.Len(t, movs, 2)
	assert.Len(t, mov.movements, 2)

	varilla, _ := stock.GetByID(testTenant, "var-1")
	pintura, _ := stock.GetByID(testTenant, "pin-1")
	assert.Equal(t, int64(14), varilla.OnHand)
	assert.Equal(t, int64(8), pintura.OnHand)
}

func TestRegisterExits_UnaLineaInsuficienteRechazaElLote(t *testing.T) {
	uc, stock, mov, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)
	seedItem(t, stock, "pin-1", entity.CategoryPinturaAcabado, 2, 1)

	_, err := uc.RegisterExits(context.Background(), testTenant, "ana", dto.BatchEntryRequest{
		Materials: []dto.MaterialEntry{
			{Category: entity.CategoryVarilla, ItemID: "var-1", Quantity: 4},
			{Category: entity.CategoryPinturaAcabado, ItemID: "pin-1", Quantity: 3}, // insuficiente
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	varilla, _ := stock.GetByID(testTenant, "var-1")
	pintura, _ := stock.GetByID(testTenant, "pin-1")
	assert.Equal(t, int64(10), varilla.OnHand, "rollback: la primera línea también se revierte")
	assert.Equal(t, int64(2), pintura.OnHand)
	assert.Empty(t, mov.movements)
}

func TestRegisterEntries_CantidadNoPositivaInvalida(t *testing.T) {
	uc, stock, _, _ := newAdjustFixture(t)
	seedItem(t, stock, "var-1", entity.CategoryVarilla, 10, 3)

	_, err := uc.RegisterEntries(context.Background(), testTenant, "ana", dto.BatchEntryRequest{
		Materials: []dto.MaterialEntry{
			{Category: entity.CategoryVarilla, ItemID: "var-1", Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterEntries(context.Background(), testTenant, "ana", dto.BatchEntryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
