package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProdReportRepo struct {
	summary *repository.ProductionSummaryRow
	waste   []repository.MaterialUsageRow
}

func (r *fakeProdReportRepo) LowStockItems(ctx context.Context, tenantID string) ([]repository.LowStockItem, error) {
	return nil, nil
}

func (r *fakeProdReportRepo) StockByCategory(ctx context.Context, tenantID string) ([]repository.CategoryStockRow, error) {
	return nil, nil
}

func (r *fakeProdReportRepo) ExpiringItems(ctx context.Context, tenantID string, before time.Time) ([]repository.ExpiringItem, error) {
	return nil, nil
}

func (r *fakeProdReportRepo) ProductionSummary(ctx context.Context, tenantID string, since time.Time) (*repository.ProductionSummaryRow, error) {
	return r.summary, nil
}

func (r *fakeProdReportRepo) WasteByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return r.waste, nil
}

func (r *fakeProdReportRepo) ConsumptionByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return r.waste, nil
}

func (r *fakeProdReportRepo) PendingOrderCount(ctx context.Context, tenantID string) (int64, error) {
	return 0, nil
}

func (r *fakeProdReportRepo) BusinessCounts(ctx context.Context, tenantID string) (*repository.BusinessCountsRow, error) {
	return &repository.BusinessCountsRow{}, nil
}

func TestOrderEfficiency_Formula(t *testing.T) {
	orders := newFakeOrderRepo()
	lines := &fakeLineRepo{}
	require.NoError(t, orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, OrderNumber: "OP-1", Status: entity.OrderEnProceso,
	}))
	require.NoError(t, lines.Create(&entity.ProductionLine{
		ID: "l1", OrderID: "op-1", Category: entity.CategoryVarilla, ItemID: "var-1",
		Planned: 10, Consumed: 9, Waste: 1,
	}))
	require.NoError(t, lines.Create(&entity.ProductionLine{
		ID: "l2", OrderID: "op-1", Category: entity.CategoryPinturaAcabado, ItemID: "pin-1",
		Planned: 5, Consumed: 4, Waste: 0,
	}))

	uc := production.NewReportsUseCase(&fakeProdReportRepo{}, orders, lines)
	eff, err := uc.OrderEfficiency(testTenant, "op-1")
	require.NoError(t, err)

	assert.Equal(t, int64(15), eff.TotalPlanned)
	assert.Equal(t, int64(13), eff.TotalConsumed)
	assert.Equal(t, int64(1), eff.TotalWaste)
	// ((13 - 1) / 15) * 100 = 80
	assert.True(t, eff.Efficiency.Equal(decimal.NewFromInt(80)),
		"eficiencia esperada 80, obtuvo %s", eff.Efficiency)
	assert.Len(t, eff.Lines, 2)
}

func TestOrderEfficiency_SinPlanificadoEsCero(t *testing.T) {
	orders := newFakeOrderRepo()
	lines := &fakeLineRepo{}
	require.NoError(t, orders.Create(&entity.ProductionOrder{
		ID: "op-1", TenantID: testTenant, OrderNumber: "OP-1", Status: entity.OrderEnProceso,
	}))
	require.NoError(t, lines.Create(&entity.ProductionLine{
		ID: "l1", OrderID: "op-1", Category: entity.CategoryVarilla, ItemID: "var-1",
		Planned: 0, Consumed: 3, Waste: 1,
	}))

	uc := production.NewReportsUseCase(&fakeProdReportRepo{}, orders, lines)
	eff, err := uc.OrderEfficiency(testTenant, "op-1")
	require.NoError(t, err)
	assert.True(t, eff.Efficiency.IsZero(), "sin planificado no hay división por cero")
}

func TestSummary_EficienciaEsTasaDeCumplimiento(t *testing.T) {
	repo := &fakeProdReportRepo{summary: &repository.ProductionSummaryRow{
		TotalOrders:     4,
		CompletedOrders: 3,
		InProcessOrders: 1,
		TotalWaste:      10,
		AvgDays:         2.25,
	}}
	uc := production.NewReportsUseCase(repo, newFakeOrderRepo(), &fakeLineRepo{})

	rep, err := uc.Summary(context.Background(), testTenant, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, rep.PeriodDays)
	assert.Equal(t, int64(4), rep.TotalOrders)
	// 3 completadas de 4 = 75, no la fórmula de material de una orden
	assert.True(t, rep.Efficiency.Equal(decimal.NewFromInt(75)),
		"eficiencia del período esperada 75, obtuvo %s", rep.Efficiency)
	assert.True(t, rep.AvgDays.Equal(decimal.NewFromFloat(2.3)), "promedio redondeado a 1 decimal, obtuvo %s", rep.AvgDays)
}

func TestSummary_SinOrdenesEficienciaCero(t *testing.T) {
	repo := &fakeProdReportRepo{summary: &repository.ProductionSummaryRow{}}
	uc := production.NewReportsUseCase(repo, newFakeOrderRepo(), &fakeLineRepo{})

	rep, err := uc.Summary(context.Background(), testTenant, 30)
	require.NoError(t, err)
	assert.True(t, rep.Efficiency.IsZero(), "sin órdenes no hay división por cero")
}

func TestWasteAnalysis_PorcentajeDeMermaSobreLoConsumido(t *testing.T) {
	repo := &fakeProdReportRepo{waste: []repository.MaterialUsageRow{
		{Category: entity.CategoryVarilla, ItemID: "var-1", Name: "varilla", Consumed: 10, Waste: 1, OrdersAffected: 2},
		{Category: entity.CategoryPinturaAcabado, ItemID: "pin-1", Name: "laca", Consumed: 0, Waste: 2},
	}}
	uc := production.NewReportsUseCase(repo, newFakeOrderRepo(), &fakeLineRepo{})

	rows, err := uc.WasteAnalysis(context.Background(), testTenant, 30)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// merma / consumido: 1 de 10 = 10, no 1 de 11
	assert.True(t, rows[0].WastePct.Equal(decimal.NewFromInt(10)),
		"merma de 1 sobre 10 consumidas = 10%%, obtuvo %s", rows[0].WastePct)
	assert.True(t, rows[1].WastePct.IsZero(), "sin consumo no hay división por cero")
}
