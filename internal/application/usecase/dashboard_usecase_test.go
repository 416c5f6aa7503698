package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

type fakeDashReportRepo struct {
	lowStock []repository.LowStockItem
	byCat    []repository.CategoryStockRow
	summary  *repository.ProductionSummaryRow
	pending  int64
	counts   *repository.BusinessCountsRow
}

func (r *fakeDashReportRepo) LowStockItems(ctx context.Context, tenantID string) ([]repository.LowStockItem, error) {
	return r.lowStock, nil
}

func (r *fakeDashReportRepo) StockByCategory(ctx context.Context, tenantID string) ([]repository.CategoryStockRow, error) {
	return r.byCat, nil
}

func (r *fakeDashReportRepo) ExpiringItems(ctx context.Context, tenantID string, before time.Time) ([]repository.ExpiringItem, error) {
	return nil, nil
}

func (r *fakeDashReportRepo) ProductionSummary(ctx context.Context, tenantID string, since time.Time) (*repository.ProductionSummaryRow, error) {
	return r.summary, nil
}

func (r *fakeDashReportRepo) WasteByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return nil, nil
}

func (r *fakeDashReportRepo) ConsumptionByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	return nil, nil
}

func (r *fakeDashReportRepo) PendingOrderCount(ctx context.Context, tenantID string) (int64, error) {
	return r.pending, nil
}

func (r *fakeDashReportRepo) BusinessCounts(ctx context.Context, tenantID string) (*repository.BusinessCountsRow, error) {
	return r.counts, nil
}

type fakeDashMovementRepo struct{}

func (r *fakeDashMovementRepo) Create(movement *entity.Movement) error { return nil }

func (r *fakeDashMovementRepo) GetByID(tenantID, id string) (*entity.Movement, error) {
	return nil, nil
}

func (r *fakeDashMovementRepo) ListByTenant(tenantID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeDashOrderRepo struct{}

func (r *fakeDashOrderRepo) Create(order *entity.ProductionOrder) error { return nil }

func (r *fakeDashOrderRepo) GetByID(tenantID, id string) (*entity.ProductionOrder, error) {
	return nil, nil
}

func (r *fakeDashOrderRepo) Update(order *entity.ProductionOrder) error { return nil }

func (r *fakeDashOrderRepo) ListByTenant(tenantID, status string, limit, offset int) ([]*entity.ProductionOrder, error) {
	return nil, nil
}

type fakeDashLineRepo struct{}

func (r *fakeDashLineRepo) Create(line *entity.ProductionLine) error { return nil }

func (r *fakeDashLineRepo) GetByOrderAndItem(orderID, category, itemID string) (*entity.ProductionLine, error) {
	return nil, nil
}

func (r *fakeDashLineRepo) Update(line *entity.ProductionLine) error { return nil }

func (r *fakeDashLineRepo) ListByOrder(orderID string) ([]*entity.ProductionLine, error) {
	return nil, nil
}

func newDashboardFixture(repo *fakeDashReportRepo) *usecase.DashboardUseCase {
	invReports := inventory.NewReportsUseCase(repo, &fakeDashMovementRepo{})
	prdReports := production.NewReportsUseCase(repo, &fakeDashOrderRepo{}, &fakeDashLineRepo{})
	return usecase.NewDashboardUseCase(repo, invReports, prdReports)
}

func TestDashboardSummary_ConteosEIngresosDelNegocio(t *testing.T) {
	repo := &fakeDashReportRepo{
		byCat: []repository.CategoryStockRow{
			{Category: entity.CategoryVarilla, TotalItems: 3, LowStockCount: 1, TotalValue: decimal.NewFromInt(100)},
			{Category: entity.CategoryPinturaAcabado, TotalItems: 2, LowStockCount: 0, TotalValue: decimal.NewFromInt(50)},
		},
		summary: &repository.ProductionSummaryRow{TotalOrders: 4, CompletedOrders: 2},
		pending: 2,
		counts: &repository.BusinessCountsRow{
			Clients:       12,
			Orders:        8,
			Contracts:     3,
			Appointments:  5,
			OrdersRevenue: decimal.NewFromInt(1500),
			ContractsPaid: decimal.NewFromInt(700),
		},
	}
	uc := newDashboardFixture(repo)

	dash, err := uc.Summary(context.Background(), testTenant)
	require.NoError(t, err)

	assert.Equal(t, int64(12), dash.TotalClients)
	assert.Equal(t, int64(8), dash.TotalOrders)
	assert.Equal(t, int64(3), dash.TotalContracts)
	assert.Equal(t, int64(5), dash.TotalAppointments)
	assert.True(t, dash.TotalRevenue.Equal(decimal.NewFromInt(2200)),
		"ingresos = pedidos entregados + pagos de contratos, obtuvo %s", dash.TotalRevenue)

	assert.True(t, dash.StockTotalValue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(1), dash.LowStockCount)
	assert.Equal(t, int64(2), dash.PendingOrders)
	assert.True(t, dash.Production.Efficiency.Equal(decimal.NewFromInt(50)),
		"2 completadas de 4 = 50%%, obtuvo %s", dash.Production.Efficiency)
}

func TestDashboardSummary_LimitaAlertasDestacadas(t *testing.T) {
	var lowStock []repository.LowStockItem
	for i := 0; i < 7; i++ {
		lowStock = append(lowStock, repository.LowStockItem{
			Category: entity.CategoryVarilla, ItemID: "var-" + string(rune('a'+i)), OnHand: 1, ReorderLevel: 5,
		})
	}
	repo := &fakeDashReportRepo{
		lowStock: lowStock,
		summary:  &repository.ProductionSummaryRow{},
		counts:   &repository.BusinessCountsRow{},
	}
	uc := newDashboardFixture(repo)

	dash, err := uc.Summary(context.Background(), testTenant)
	require.NoError(t, err)
	assert.Len(t, dash.LowStockHighlights, 5, "el dashboard destaca como máximo 5 alertas")
}
