package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Verificación estática de las interfaces de los casos de uso.
var _ order.TxRunner = (*TxRunner)(nil)
var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción con los repos del ciclo de vida de
// órdenes y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	paymentRepo repository.PaymentTransactionRepository,
	fgRepo repository.FinishedGoodTransactionRepository,
	stockRepo repository.StockRepository,
	wastageRepo repository.WastageRepository,
	seqRepo repository.SequenceRepository,
	balanceRepo repository.DailyBalanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paymentRepo := NewPaymentTransactionRepository(tx)
	fgRepo := NewFinishedGoodTransactionRepository(tx)
	stockRepo := NewStockRepository(tx)
	wastageRepo := NewWastageRepository(tx)
	seqRepo := NewSequenceRepository(tx)
	balanceRepo := NewDailyBalanceRepository(tx)

	if err := fn(paymentRepo, fgRepo, stockRepo, wastageRepo, seqRepo, balanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventory inicia una transacción con los repos de la recepción GRN.
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	rmtRepo repository.RawMaterialTransactionRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	rmtRepo := NewRawMaterialTransactionRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(stockRepo, rmtRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
