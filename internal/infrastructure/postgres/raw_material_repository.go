package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.RawMaterialTransactionRepository = (*RawMaterialTransactionRepo)(nil)

// RawMaterialTransactionRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type RawMaterialTransactionRepo struct {
	q Querier
}

// NewRawMaterialTransactionRepository construye el adaptador de transacciones de materia prima. Pasar pool o tx (Querier).
func NewRawMaterialTransactionRepository(q Querier) *RawMaterialTransactionRepo {
	return &RawMaterialTransactionRepo{q: q}
}

const rmtColumns = `id, rmt_id, company_id, shop_id, supplier_id, product_id,
	transaction_date_time, transaction_type, transaction_code, raw_mat_in_out,
	unit_cost, quantity, total_cost, remarks, transaction_status, created_by, created_at`

func scanRawMaterial(row pgx.Row) (*entity.RawMaterialTransaction, error) {
	var t entity.RawMaterialTransaction
	err := row.Scan(
		&t.ID, &t.RmtID, &t.CompanyID, &t.ShopID, &t.SupplierID, &t.ProductID,
		&t.TransactionDateTime, &t.TransactionType, &t.TransactionCode, &t.RawMatInOut,
		&t.UnitCost, &t.Quantity, &t.TotalCost, &t.Remarks, &t.TransactionStatus, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una transacción de materia prima.
func (r *RawMaterialTransactionRepo) Create(tx *entity.RawMaterialTransaction) error {
	query := `
		INSERT INTO raw_material_transactions (` + rmtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.RmtID, tx.CompanyID, tx.ShopID, tx.SupplierID, tx.ProductID,
		tx.TransactionDateTime, tx.TransactionType, tx.TransactionCode, tx.RawMatInOut,
		tx.UnitCost, tx.Quantity, tx.TotalCost, tx.Remarks, tx.TransactionStatus, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material transaction: %w", err)
	}
	return nil
}

// ListNotCancelledUntil transacciones no canceladas hasta la fecha dada
// inclusive, para el bucket de compras del reporte de movimiento.
func (r *RawMaterialTransactionRepo) ListNotCancelledUntil(companyID, shopID string, until time.Time) ([]*entity.RawMaterialTransaction, error) {
	query := `SELECT ` + rmtColumns + ` FROM raw_material_transactions
		WHERE company_id = $1 AND shop_id = $2 AND transaction_status <> $3
			AND transaction_date_time <= $4
		ORDER BY transaction_date_time`
	rows, err := r.q.Query(context.Background(), query, companyID, shopID, entity.StatusCancelled, until)
	if err != nil {
		return nil, fmt.Errorf("list raw material transactions: %w", err)
	}
	defer rows.Close()

	var txs []*entity.RawMaterialTransaction
	for rows.Next() {
		t, err := scanRawMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
