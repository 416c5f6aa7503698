package postgres

import (
	"context"
	"fmt"

	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*ProductionTxRunner)(nil)

// TxRunner ejecuta callbacks del motor de stock dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ProductionTxRunner ejecuta callbacks de producción dentro de una transacción
// PostgreSQL: orden, líneas, stock, libro y cuadros atados a la misma tx.
type ProductionTxRunner struct {
	pool *pgxpool.Pool
}

// NewProductionTxRunner construye el runner con el pool.
func NewProductionTxRunner(pool *pgxpool.Pool) *ProductionTxRunner {
	return &ProductionTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *ProductionTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ProductionOrderRepository,
	lineRepo repository.ProductionLineRepository,
	stockRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
	goodRepo repository.FinishedGoodRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewProductionOrderRepository(tx),
		NewProductionLineRepository(tx),
		NewStockItemRepository(tx),
		NewMovementRepository(tx),
		NewFinishedGoodRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
