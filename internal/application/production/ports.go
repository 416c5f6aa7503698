package production

import (
	"context"

	"github.com/fotostudio/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// El registro de consumo toca orden, línea, stock y libro de movimientos: todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.ProductionOrderRepository,
		lineRepo repository.ProductionLineRepository,
		stockRepo repository.StockItemRepository,
		movRepo repository.MovementRepository,
		goodRepo repository.FinishedGoodRepository,
	) error) error
}
