package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem fila cruda del reporte de stock bajo (onHand <= mínimo, inclusivo).
type LowStockItem struct {
	Category     string
	ItemID       string
	Name         string
	OnHand       int64
	ReorderLevel int64
	Location     string
}

// CategoryStockRow agregación cruda por categoría para el reporte de valor de inventario.
type CategoryStockRow struct {
	Category      string
	TotalItems    int64
	LowStockCount int64
	TotalValue    decimal.Decimal // Σ(onHand × precio unitario)
}

// ExpiringItem material con vencimiento dentro de la ventana consultada.
type ExpiringItem struct {
	Category  string
	ItemID    string
	Name      string
	ExpiresAt time.Time
}

// ProductionSummaryRow conteos de órdenes por estado en un período, más la
// merma total de sus líneas.
type ProductionSummaryRow struct {
	TotalOrders     int64
	CompletedOrders int64
	InProcessOrders int64
	CancelledOrders int64
	TotalWaste      int64
	AvgDays         float64 // promedio de días entre creación y última actualización de completadas
}

// BusinessCountsRow conteos globales del tenant más los ingresos acumulados
// para el dashboard.
type BusinessCountsRow struct {
	Clients       int64
	Orders        int64
	Contracts     int64
	Appointments  int64
	OrdersRevenue decimal.Decimal // Σ total de pedidos entregados
	ContractsPaid decimal.Decimal // Σ monto pagado de contratos
}

// MaterialUsageRow agregación de consumo y merma por material.
type MaterialUsageRow struct {
	Category       string
	ItemID         string
	Name           string
	Consumed       int64
	Waste          int64
	OrdersAffected int64
}

// ReportRepository consultas de solo lectura sobre catálogo, libro y producción.
// Sin caché: cada llamada recalcula desde las tablas fuente.
type ReportRepository interface {
	LowStockItems(ctx context.Context, tenantID string) ([]LowStockItem, error)
	StockByCategory(ctx context.Context, tenantID string) ([]CategoryStockRow, error)
	ExpiringItems(ctx context.Context, tenantID string, before time.Time) ([]ExpiringItem, error)
	ProductionSummary(ctx context.Context, tenantID string, since time.Time) (*ProductionSummaryRow, error)
	// WasteByMaterial agrega merma/uso por material desde las líneas de orden del período.
	WasteByMaterial(ctx context.Context, tenantID string, since time.Time) ([]MaterialUsageRow, error)
	// ConsumptionByMaterial agrega desde el libro de movimientos (uso_produccion y merma).
	ConsumptionByMaterial(ctx context.Context, tenantID string, since time.Time) ([]MaterialUsageRow, error)
	PendingOrderCount(ctx context.Context, tenantID string) (int64, error)
	// BusinessCounts conteos de clientes, pedidos, contratos y citas, más ingresos.
	BusinessCounts(ctx context.Context, tenantID string) (*BusinessCountsRow, error)
}
