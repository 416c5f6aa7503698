package usecase

import (
	"context"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase arma el resumen de la pantalla principal combinando los
// reportes de inventario y producción del tenant.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	invReports *inventory.ReportsUseCase
	prdReports *production.ReportsUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	reportRepo repository.ReportRepository,
	invReports *inventory.ReportsUseCase,
	prdReports *production.ReportsUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, invReports: invReports, prdReports: prdReports}
}

// maxDashboardAlerts cuántas alertas de stock se destacan en el dashboard.
const maxDashboardAlerts = 5

// Summary devuelve el resumen agregado de los últimos 30 días.
func (uc *DashboardUseCase) Summary(ctx context.Context, tenantID string) (*dto.DashboardDTO, error) {
	byCategory, err := uc.invReports.StockValueByCategory(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totalValue := decimal.Zero
	var lowStockCount int64
	for _, row := range byCategory {
		totalValue = totalValue.Add(row.TotalValue)
		lowStockCount += row.LowStockCount
	}

	alerts, err := uc.invReports.LowStockAlerts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(alerts) > maxDashboardAlerts {
		alerts = alerts[:maxDashboardAlerts]
	}

	pending, err := uc.reportRepo.PendingOrderCount(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	counts, err := uc.reportRepo.BusinessCounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	prod, err := uc.prdReports.Summary(ctx, tenantID, 30)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		TotalClients:       counts.Clients,
		TotalOrders:        counts.Orders,
		TotalContracts:     counts.Contracts,
		TotalAppointments:  counts.Appointments,
		TotalRevenue:       counts.OrdersRevenue.Add(counts.ContractsPaid),
		StockTotalValue:    totalValue,
		LowStockCount:      lowStockCount,
		PendingOrders:      pending,
		Production:         *prod,
		StockByCategory:    byCategory,
		LowStockHighlights: alerts,
	}, nil
}
