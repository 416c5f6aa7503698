package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	lowStock []repository.LowStockItem
	byCat    []repository.CategoryStockRow
	expiring []repository.ExpiringItem
}

func (r *fakeReportRepo) LowStockItems(ctx context.Context, tenantID string) ([]repository.LowStockItem, error) {
	return r.lowStock, nil
}

func (r *fakeReportRepo) StockByCategory(ctx context.Context, tenantID string) ([]repository.CategoryStockRow, error) {
	return r.byCat, nil
}

func (r *fakeReportRepo) ExpiringItems(ctx context.Context, tenantID string, before time.Time) ([]repository.ExpiringItem, error) {
	var out []repository.ExpiringItem
	for _, e := range r.expiring {
		if e.ExpiresAt.Before(before) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) ProductionSummary(ctx context.Context, tenantID string, since time.Time) (*repository.ProductionSummaryRow, error) {
	return &repository.ProductionSummaryRow{}, nil
}

func (r *fakeReportRepo) WasteByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) ConsumptionByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) PendingOrderCount(ctx context.Context, tenantID string) (int64, error) {
	return 0, nil
}

func (r *fakeReportRepo) BusinessCounts(ctx context.Context, tenantID string) (*repository.BusinessCountsRow, error) {
	return &repository.BusinessCountsRow{}, nil
}

func TestLowStockAlerts_CalculaDeficit(t *testing.T) {
	repo := &fakeReportRepo{lowStock: []repository.LowStockItem{
		{Category: entity.CategoryVarilla, ItemID: "var-1", Name: "varilla dorada", OnHand: 2, ReorderLevel: 5},
		{Category: entity.CategoryPinturaAcabado, ItemID: "pin-1", Name: "laca mate", OnHand: 3, ReorderLevel: 3},
	}}
	uc := inventory.NewReportsUseCase(repo, &fakeMovementRepo{})

	alerts, err := uc.LowStockAlerts(context.Background(), testTenant)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, int64(-3), alerts[0].Deficit)
	assert.Equal(t, int64(0), alerts[1].Deficit, "en el umbral exacto también alerta, con diferencia cero")
}

func TestLowStockAlerts_ProductoTerminadoNoAlerta(t *testing.T) {
	repo := &fakeReportRepo{lowStock: []repository.LowStockItem{
		{Category: entity.CategoryProductoTerminado, ItemID: "cua-1", Name: "cuadro 40x60", OnHand: 0, ReorderLevel: 2},
		{Category: entity.CategoryVarilla, ItemID: "var-1", Name: "varilla dorada", OnHand: 1, ReorderLevel: 5},
	}}
	uc := inventory.NewReportsUseCase(repo, &fakeMovementRepo{})

	alerts, err := uc.LowStockAlerts(context.Background(), testTenant)
	require.NoError(t, err)
	require.Len(t, alerts, 1, "los productos terminados no manejan umbral de reorden")
	assert.Equal(t, "var-1", alerts[0].ItemID)
}

func TestStockValueByCategory_PorcentajeRedondeado(t *testing.T) {
	repo := &fakeReportRepo{byCat: []repository.CategoryStockRow{
		{Category: entity.CategoryVarilla, TotalItems: 3, LowStockCount: 1, TotalValue: decimal.NewFromInt(150)},
		{Category: entity.CategoryMaterialImpresion, TotalItems: 0, LowStockCount: 0, TotalValue: decimal.Zero},
	}}
	uc := inventory.NewReportsUseCase(repo, &fakeMovementRepo{})

	rows, err := uc.StockValueByCategory(context.Background(), testTenant)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].LowStockPct.Equal(decimal.NewFromFloat(33.33)),
		"1 de 3 items en stock bajo = 33.33%%, obtuvo %s", rows[0].LowStockPct)
	assert.True(t, rows[1].LowStockPct.IsZero(), "sin items no hay división por cero")
}

func TestStockValueByCategory_ExcluyeProductoTerminado(t *testing.T) {
	repo := &fakeReportRepo{byCat: []repository.CategoryStockRow{
		{Category: entity.CategoryVarilla, TotalItems: 2, LowStockCount: 0, TotalValue: decimal.NewFromInt(100)},
		{Category: entity.CategoryProductoTerminado, TotalItems: 5, LowStockCount: 1, TotalValue: decimal.NewFromInt(900)},
	}}
	uc := inventory.NewReportsUseCase(repo, &fakeMovementRepo{})

	rows, err := uc.StockValueByCategory(context.Background(), testTenant)
	require.NoError(t, err)
	require.Len(t, rows, 1, "los cuadros terminados no suman al valor del inventario de materiales")
	assert.Equal(t, entity.CategoryVarilla, rows[0].Category)
}

func TestExpiryAlerts_DiasRestantes(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{expiring: []repository.ExpiringItem{
		{Category: entity.CategorySoftwareEquipo, ItemID: "lic-1", Name: "licencia edición", ExpiresAt: now.AddDate(0, 0, 10)},
		{Category: entity.CategoryMaterialPintura, ItemID: "oleo-1", Name: "óleo blanco", ExpiresAt: now.AddDate(0, 0, 60)},
	}}
	uc := inventory.NewReportsUseCase(repo, &fakeMovementRepo{})

	alerts, err := uc.ExpiryAlerts(context.Background(), testTenant, 30)
	require.NoError(t, err)
	require.Len(t, alerts, 1, "solo lo que vence dentro de la ventana")
	assert.Equal(t, "lic-1", alerts[0].ItemID)
	assert.InDelta(t, 9, alerts[0].DaysRemaining, 1)
}

func TestListMovements_FiltraPorTipo(t *testing.T) {
	mov := &fakeMovementRepo{}
	require.NoError(t, mov.Create(&entity.Movement{ID: "m1", TenantID: testTenant, Kind: entity.MovementEntrada, Quantity: 5}))
	require.NoError(t, mov.Create(&entity.Movement{ID: "m2", TenantID: testTenant, Kind: entity.MovementMerma, Quantity: 1}))
	uc := inventory.NewReportsUseCase(&fakeReportRepo{}, mov)

	res, err := uc.ListMovements(testTenant, repository.MovementFilter{Kind: entity.MovementMerma}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "m2", res.Items[0].ID)

	_, err = uc.ListMovements(testTenant, repository.MovementFilter{Kind: "teletransporte"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
