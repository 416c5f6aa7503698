package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
// Cada llamada recalcula desde las tablas fuente, sin caché.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStockItems devuelve los items con existencias en o bajo el mínimo.
// Los productos terminados no manejan umbral de reorden y quedan fuera.
func (r *ReportRepo) LowStockItems(ctx context.Context, tenantID string) ([]repository.LowStockItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, id, name, on_hand, reorder_level, location
		FROM stock_items
		WHERE tenant_id = $1 AND category <> $2
		  AND reorder_level > 0 AND on_hand <= reorder_level
		ORDER BY (on_hand - reorder_level), category, name`,
		tenantID, entity.CategoryProductoTerminado,
	)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		err := rows.Scan(&it.Category, &it.ItemID, &it.Name, &it.OnHand, &it.ReorderLevel, &it.Location)
		if err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// StockByCategory agrega conteo, faltantes y valor (existencias × precio) por
// categoría de material. Los productos terminados no cuentan como inventario.
func (r *ReportRepo) StockByCategory(ctx context.Context, tenantID string) ([]repository.CategoryStockRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE reorder_level > 0 AND on_hand <= reorder_level),
		       COALESCE(SUM(on_hand * unit_price), 0)
		FROM stock_items
		WHERE tenant_id = $1 AND category <> $2
		GROUP BY category
		ORDER BY category`,
		tenantID, entity.CategoryProductoTerminado,
	)
	if err != nil {
		return nil, fmt.Errorf("stock by category: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryStockRow
	for rows.Next() {
		var row repository.CategoryStockRow
		err := rows.Scan(&row.Category, &row.TotalItems, &row.LowStockCount, &row.TotalValue)
		if err != nil {
			return nil, fmt.Errorf("scan category stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ExpiringItems devuelve materiales con vencimiento antes de la fecha dada.
func (r *ReportRepo) ExpiringItems(ctx context.Context, tenantID string, before time.Time) ([]repository.ExpiringItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, id, name, expires_at
		FROM stock_items
		WHERE tenant_id = $1 AND expires_at IS NOT NULL AND expires_at < $2
		ORDER BY expires_at`,
		tenantID, before,
	)
	if err != nil {
		return nil, fmt.Errorf("expiring items: %w", err)
	}
	defer rows.Close()
	var list []repository.ExpiringItem
	for rows.Next() {
		var it repository.ExpiringItem
		if err := rows.Scan(&it.Category, &it.ItemID, &it.Name, &it.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan expiring item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ProductionSummary agrega conteos por estado, merma total y promedio de
// días de las órdenes completadas desde la fecha dada.
func (r *ReportRepo) ProductionSummary(ctx context.Context, tenantID string, since time.Time) (*repository.ProductionSummaryRow, error) {
	var row repository.ProductionSummaryRow
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE o.status = 'completada'),
		       COUNT(*) FILTER (WHERE o.status = 'en_proceso'),
		       COUNT(*) FILTER (WHERE o.status = 'cancelada'),
		       COALESCE(SUM(l.waste), 0),
		       COALESCE(AVG(EXTRACT(EPOCH FROM o.updated_at - o.created_date) / 86400)
		                FILTER (WHERE o.status = 'completada'), 0)
		FROM production_orders o
		LEFT JOIN LATERAL (
			SELECT SUM(waste) AS waste
			FROM production_order_lines
			WHERE order_id = o.id
		) l ON true
		WHERE o.tenant_id = $1 AND o.created_date >= $2`,
		tenantID, since,
	).Scan(
		&row.TotalOrders, &row.CompletedOrders, &row.InProcessOrders, &row.CancelledOrders,
		&row.TotalWaste, &row.AvgDays,
	)
	if err != nil {
		return nil, fmt.Errorf("production summary: %w", err)
	}
	return &row, nil
}

// WasteByMaterial agrega consumo y merma por material desde las líneas de orden del período.
func (r *ReportRepo) WasteByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.category, l.item_id, COALESCE(s.name, ''),
		       COALESCE(SUM(l.consumed), 0),
		       COALESCE(SUM(l.waste), 0),
		       COUNT(DISTINCT l.order_id)
		FROM production_order_lines l
		JOIN production_orders o ON o.id = l.order_id
		LEFT JOIN stock_items s ON s.id = l.item_id
		WHERE o.tenant_id = $1 AND o.created_date >= $2
		GROUP BY l.category, l.item_id, s.name
		HAVING SUM(l.waste) > 0
		ORDER BY SUM(l.waste) DESC`,
		tenantID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("waste by material: %w", err)
	}
	defer rows.Close()
	return scanMaterialUsageRows(rows)
}

// ConsumptionByMaterial agrega desde el libro de movimientos (uso_produccion y merma).
func (r *ReportRepo) ConsumptionByMaterial(ctx context.Context, tenantID string, since time.Time) ([]repository.MaterialUsageRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT m.category, m.item_id, COALESCE(s.name, ''),
		       COALESCE(SUM(m.quantity) FILTER (WHERE m.kind = $3), 0),
		       COALESCE(SUM(m.quantity) FILTER (WHERE m.kind = $4), 0),
		       COUNT(DISTINCT m.production_order_id) FILTER (WHERE m.production_order_id IS NOT NULL)
		FROM inventory_movements m
		LEFT JOIN stock_items s ON s.id = m.item_id
		WHERE m.tenant_id = $1 AND m.date >= $2 AND m.kind IN ($3, $4)
		GROUP BY m.category, m.item_id, s.name
		ORDER BY 4 DESC`,
		tenantID, since, entity.MovementUsoProduccion, entity.MovementMerma,
	)
	if err != nil {
		return nil, fmt.Errorf("consumption by material: %w", err)
	}
	defer rows.Close()
	return scanMaterialUsageRows(rows)
}

// PendingOrderCount cuenta pedidos de cliente sin entregar ni cancelar.
func (r *ReportRepo) PendingOrderCount(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE tenant_id = $1 AND status IN ($2, $3)`,
		tenantID, entity.PedidoPendiente, entity.PedidoEnProceso,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pending order count: %w", err)
	}
	return count, nil
}

// BusinessCounts cuenta clientes, pedidos, contratos y citas del tenant y
// acumula los ingresos: total de pedidos entregados más pagos de contratos.
func (r *ReportRepo) BusinessCounts(ctx context.Context, tenantID string) (*repository.BusinessCountsRow, error) {
	var row repository.BusinessCountsRow
	err := r.q.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM clients WHERE tenant_id = $1),
		       (SELECT COUNT(*) FROM orders WHERE tenant_id = $1),
		       (SELECT COUNT(*) FROM contracts WHERE tenant_id = $1),
		       (SELECT COUNT(*) FROM appointments WHERE tenant_id = $1),
		       (SELECT COALESCE(SUM(total), 0) FROM orders WHERE tenant_id = $1 AND status = $2),
		       (SELECT COALESCE(SUM(paid_amount), 0) FROM contracts WHERE tenant_id = $1)`,
		tenantID, entity.PedidoEntregado,
	).Scan(
		&row.Clients, &row.Orders, &row.Contracts, &row.Appointments,
		&row.OrdersRevenue, &row.ContractsPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("business counts: %w", err)
	}
	return &row, nil
}

func scanMaterialUsageRows(rows pgx.Rows) ([]repository.MaterialUsageRow, error) {
	var list []repository.MaterialUsageRow
	for rows.Next() {
		var row repository.MaterialUsageRow
		err := rows.Scan(&row.Category, &row.ItemID, &row.Name, &row.Consumed, &row.Waste, &row.OrdersAffected)
		if err != nil {
			return nil, fmt.Errorf("scan material usage row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
