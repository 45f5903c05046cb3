package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.FinishedGoodTransactionRepository = (*FinishedGoodTransactionRepo)(nil)

// FinishedGoodTransactionRepo implementación del puerto sobre PostgreSQL.
// used_product_details es una columna JSONB: el snapshot viaja entero con
// la línea y se lee tal cual al revertir.
type FinishedGoodTransactionRepo struct {
	q Querier
}

// NewFinishedGoodTransactionRepository construye el adaptador de líneas de venta. Pasar pool o tx (Querier).
func NewFinishedGoodTransactionRepository(q Querier) *FinishedGoodTransactionRepo {
	return &FinishedGoodTransactionRepo{q: q}
}

const fgColumns = `id, ft_id, company_id, shop_id, finished_good_id, used_product_details,
	transaction_date_time, transaction_type, order_no, transaction_code, selling_type,
	selling_price, discount_amount, customer_id, transaction_in_out, finished_good_qty,
	transaction_status, created_by, created_at, updated_at`

func scanFinishedGood(row pgx.Row) (*entity.FinishedGoodTransaction, error) {
	var t entity.FinishedGoodTransaction
	err := row.Scan(
		&t.ID, &t.FtID, &t.CompanyID, &t.ShopID, &t.FinishedGoodID, &t.UsedProductDetails,
		&t.TransactionDateTime, &t.TransactionType, &t.OrderNo, &t.TransactionCode, &t.SellingType,
		&t.SellingPrice, &t.DiscountAmount, &t.CustomerID, &t.TransactionInOut, &t.FinishedGoodQty,
		&t.TransactionStatus, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una línea de venta con su snapshot de consumo.
func (r *FinishedGoodTransactionRepo) Create(tx *entity.FinishedGoodTransaction) error {
	query := `
		INSERT INTO finished_good_transactions (` + fgColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.FtID, tx.CompanyID, tx.ShopID, tx.FinishedGoodID, tx.UsedProductDetails,
		tx.TransactionDateTime, tx.TransactionType, tx.OrderNo, tx.TransactionCode, tx.SellingType,
		tx.SellingPrice, tx.DiscountAmount, tx.CustomerID, tx.TransactionInOut, tx.FinishedGoodQty,
		tx.TransactionStatus, tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert finished good transaction: %w", err)
	}
	return nil
}

func (r *FinishedGoodTransactionRepo) list(query string, args ...any) ([]*entity.FinishedGoodTransaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finished good transactions: %w", err)
	}
	defer rows.Close()

	var txs []*entity.FinishedGoodTransaction
	for rows.Next() {
		t, err := scanFinishedGood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan finished good transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// ListByCode lista las líneas de una orden en el orden en que se crearon.
func (r *FinishedGoodTransactionRepo) ListByCode(companyID, shopID, transactionCode string) ([]*entity.FinishedGoodTransaction, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_good_transactions
		WHERE company_id = $1 AND shop_id = $2 AND transaction_code = $3 ORDER BY ft_id`
	return r.list(query, companyID, shopID, transactionCode)
}

// UpdateReturn persiste cantidad restante y nuevo estado tras una devolución.
func (r *FinishedGoodTransactionRepo) UpdateReturn(id string, remainingQty decimal.Decimal, status string) error {
	query := `
		UPDATE finished_good_transactions
		SET finished_good_qty = $2, transaction_status = $3, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, remainingQty, status)
	if err != nil {
		return fmt.Errorf("update finished good return: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// UpdateStatusByCode cambia el estado de todas las líneas de una orden (cancelación).
func (r *FinishedGoodTransactionRepo) UpdateStatusByCode(companyID, shopID, transactionCode, status string) error {
	query := `
		UPDATE finished_good_transactions SET transaction_status = $4, updated_at = NOW()
		WHERE company_id = $1 AND shop_id = $2 AND transaction_code = $3`
	tag, err := r.q.Exec(context.Background(), query, companyID, shopID, transactionCode, status)
	if err != nil {
		return fmt.Errorf("update finished good status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// ListCompletedInRange líneas Completed dentro del rango, para el reporte de ventas.
func (r *FinishedGoodTransactionRepo) ListCompletedInRange(companyID, shopID string, start, end time.Time) ([]*entity.FinishedGoodTransaction, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_good_transactions
		WHERE company_id = $1 AND shop_id = $2 AND transaction_status = $3
			AND transaction_date_time >= $4 AND transaction_date_time <= $5
		ORDER BY transaction_date_time`
	return r.list(query, companyID, shopID, entity.StatusCompleted, start, end)
}

// ListNotCancelledUntil líneas no canceladas hasta la fecha dada inclusive,
// para los cortes del reporte de movimiento de inventario.
func (r *FinishedGoodTransactionRepo) ListNotCancelledUntil(companyID, shopID string, until time.Time) ([]*entity.FinishedGoodTransaction, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_good_transactions
		WHERE company_id = $1 AND shop_id = $2 AND transaction_status <> $3
			AND transaction_date_time <= $4
		ORDER BY transaction_date_time`
	return r.list(query, companyID, shopID, entity.StatusCancelled, until)
}
