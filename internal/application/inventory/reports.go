package inventory

import (
	"context"
	"time"

	"github.com/fotostudio/gestion-api/internal/application/dto"
	"github.com/fotostudio/gestion-api/internal/domain"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportsUseCase consultas de solo lectura sobre el inventario: alertas de
// stock bajo, valor por categoría, vencimientos y libro de movimientos.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
	movRepo    repository.MovementRepository
}

// NewReportsUseCase construye el caso de uso de reportes de inventario.
func NewReportsUseCase(reportRepo repository.ReportRepository, movRepo repository.MovementRepository) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo, movRepo: movRepo}
}

// LowStockAlerts devuelve los materiales en o bajo su stock mínimo
// (comparación inclusiva), con el déficit calculado. Solo las categorías
// con umbral de reorden participan: los productos terminados no alertan.
func (uc *ReportsUseCase) LowStockAlerts(ctx context.Context, tenantID string) ([]dto.LowStockAlertDTO, error) {
	rows, err := uc.reportRepo.LowStockItems(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, r := range rows {
		if !entity.TrackableCategory(r.Category) {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			Category:     r.Category,
			ItemID:       r.ItemID,
			Name:         r.Name,
			OnHand:       r.OnHand,
			ReorderLevel: r.ReorderLevel,
			Deficit:      r.OnHand - r.ReorderLevel,
			Location:     r.Location,
			AlertedAt:    now,
		})
	}
	return alerts, nil
}

// StockValueByCategory devuelve el resumen de inventario por categoría con el
// porcentaje de items en stock bajo redondeado a 2 decimales. Los productos
// terminados son mercadería, no inventario de materiales: no entran al reporte.
func (uc *ReportsUseCase) StockValueByCategory(ctx context.Context, tenantID string) ([]dto.CategoryStockReportDTO, error) {
	rows, err := uc.reportRepo.StockByCategory(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	hundred := decimal.NewFromInt(100)
	out := make([]dto.CategoryStockReportDTO, 0, len(rows))
	for _, r := range rows {
		if !entity.TrackableCategory(r.Category) {
			continue
		}
		pct := decimal.Zero
		if r.TotalItems > 0 {
			pct = decimal.NewFromInt(r.LowStockCount).
				Div(decimal.NewFromInt(r.TotalItems)).
				Mul(hundred).Round(2)
		}
		out = append(out, dto.CategoryStockReportDTO{
			Category:      r.Category,
			TotalItems:    r.TotalItems,
			LowStockCount: r.LowStockCount,
			TotalValue:    r.TotalValue,
			LowStockPct:   pct,
		})
	}
	return out, nil
}

// ExpiryAlerts devuelve materiales y licencias que vencen dentro de la ventana
// de días indicada (por defecto 30).
func (uc *ReportsUseCase) ExpiryAlerts(ctx context.Context, tenantID string, days int) ([]dto.ExpiryAlertDTO, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	rows, err := uc.reportRepo.ExpiringItems(ctx, tenantID, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.ExpiryAlertDTO, 0, len(rows))
	for _, r := range rows {
		remaining := int(r.ExpiresAt.Sub(now).Hours() / 24)
		if remaining < 0 {
			remaining = 0
		}
		alerts = append(alerts, dto.ExpiryAlertDTO{
			Category:      r.Category,
			ItemID:        r.ItemID,
			Name:          r.Name,
			ExpiresAt:     r.ExpiresAt,
			DaysRemaining: remaining,
		})
	}
	return alerts, nil
}

// ListMovements consulta el libro de movimientos con filtros opcionales.
func (uc *ReportsUseCase) ListMovements(tenantID string, filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	if filter.Kind != "" && !entity.ValidMovementKind(filter.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Category != "" && !entity.ValidCategory(filter.Category) {
		return nil, domain.ErrInvalidCategory
	}
	movs, err := uc.movRepo.ListByTenant(tenantID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
