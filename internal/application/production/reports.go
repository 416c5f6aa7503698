package production

import (
	"context"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportsUseCase reportes de producción: eficiencia por orden, resumen del
// período, análisis de merma y consumo por material.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
	orderRepo  repository.ProductionOrderRepository
	lineRepo   repository.ProductionLineRepository
}

// NewReportsUseCase construye el caso de uso de reportes de producción.
func NewReportsUseCase(
	reportRepo repository.ReportRepository,
	orderRepo repository.ProductionOrderRepository,
	lineRepo repository.ProductionLineRepository,
) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo, orderRepo: orderRepo, lineRepo: lineRepo}
}

// OrderEfficiency calcula la eficiencia de una orden:
// ((usado - merma) / planificado) × 100, redondeado a 2 decimales.
// Sin material planificado la eficiencia es cero.
func (uc *ReportsUseCase) OrderEfficiency(tenantID, orderID string) (*dto.OrderEfficiencyDTO, error) {
	order, err := uc.orderRepo.GetByID(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	var planned, consumed, waste int64
	for _, l := range lines {
		planned += l.Planned
		consumed += l.Consumed
		waste += l.Waste
	}
	return &dto.OrderEfficiencyDTO{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		TotalPlanned:  planned,
		TotalConsumed: consumed,
		TotalWaste:    waste,
		Efficiency:    efficiency(planned, consumed, waste),
		Lines:         toLineDTOs(lines),
	}, nil
}

// Summary devuelve el resumen de producción de los últimos days días.
// La eficiencia del período es la tasa de cumplimiento:
// (órdenes completadas / órdenes totales) × 100.
func (uc *ReportsUseCase) Summary(ctx context.Context, tenantID string, days int) (*dto.ProductionReportDTO, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	row, err := uc.reportRepo.ProductionSummary(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &repository.ProductionSummaryRow{}
	}
	return &dto.ProductionReportDTO{
		PeriodDays:      days,
		TotalOrders:     row.TotalOrders,
		CompletedOrders: row.CompletedOrders,
		InProcessOrders: row.InProcessOrders,
		CancelledOrders: row.CancelledOrders,
		Efficiency:      completionRate(row.CompletedOrders, row.TotalOrders),
		TotalWaste:      row.TotalWaste,
		AvgDays:         decimal.NewFromFloat(row.AvgDays).Round(1),
	}, nil
}

// WasteAnalysis agrega merma por material desde las líneas de orden del período.
func (uc *ReportsUseCase) WasteAnalysis(ctx context.Context, tenantID string, days int) ([]dto.MaterialUsageDTO, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := uc.reportRepo.WasteByMaterial(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}
	return toUsageDTOs(rows), nil
}

// Consumption agrega consumo por material desde el libro de movimientos del período.
func (uc *ReportsUseCase) Consumption(ctx context.Context, tenantID string, days int) ([]dto.MaterialUsageDTO, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := uc.reportRepo.ConsumptionByMaterial(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}
	return toUsageDTOs(rows), nil
}

// efficiency aplica ((usado - merma) / planificado) × 100 con redondeo a 2 decimales.
func efficiency(planned, consumed, waste int64) decimal.Decimal {
	if planned <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(consumed - waste).
		Div(decimal.NewFromInt(planned)).
		Mul(decimal.NewFromInt(100)).Round(2)
}

// completionRate aplica (completadas / totales) × 100 con redondeo a 2 decimales.
func completionRate(completed, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(completed).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).Round(2)
}

// toUsageDTOs mapea las filas crudas; la merma se expresa como porcentaje
// de lo consumido.
func toUsageDTOs(rows []repository.MaterialUsageRow) []dto.MaterialUsageDTO {
	hundred := decimal.NewFromInt(100)
	out := make([]dto.MaterialUsageDTO, 0, len(rows))
	for _, r := range rows {
		pct := decimal.Zero
		if r.Consumed > 0 {
			pct = decimal.NewFromInt(r.Waste).
				Div(decimal.NewFromInt(r.Consumed)).
				Mul(hundred).Round(2)
		}
		out = append(out, dto.MaterialUsageDTO{
			Category:       r.Category,
			ItemID:         r.ItemID,
			Name:           r.Name,
			Consumed:       r.Consumed,
			Waste:          r.Waste,
			OrdersAffected: r.OrdersAffected,
			WastePct:       pct,
		})
	}
	return out
}
