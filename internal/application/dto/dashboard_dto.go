package dto

import "github.com/shopspring/decimal"

// DashboardDTO resumen agregado para la pantalla principal.
type DashboardDTO struct {
	TotalClients       int64                    `json:"total_clientes"`
	TotalOrders        int64                    `json:"total_pedidos"`
	TotalContracts     int64                    `json:"total_contratos"`
	TotalAppointments  int64                    `json:"total_citas"`
	TotalRevenue       decimal.Decimal          `json:"total_ingresos"`
	StockTotalValue    decimal.Decimal          `json:"valor_total_inventario"`
	LowStockCount      int64                    `json:"items_stock_bajo"`
	PendingOrders      int64                    `json:"pedidos_pendientes"`
	Production         ProductionReportDTO      `json:"produccion"`
	StockByCategory    []CategoryStockReportDTO `json:"inventario_por_categoria"`
	LowStockHighlights []LowStockAlertDTO       `json:"alertas_stock"`
}
