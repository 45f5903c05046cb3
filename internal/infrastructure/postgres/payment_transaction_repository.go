package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.PaymentTransactionRepository = (*PaymentTransactionRepo)(nil)

// PaymentTransactionRepo implementación del puerto PaymentTransactionRepository
// sobre PostgreSQL (usable con pool o tx).
type PaymentTransactionRepo struct {
	q Querier
}

// NewPaymentTransactionRepository construye el adaptador de persistencia de órdenes. Pasar pool o tx (Querier).
func NewPaymentTransactionRepository(q Querier) *PaymentTransactionRepo {
	return &PaymentTransactionRepo{q: q}
}

const paymentColumns = `id, payment_id, company_id, shop_id, transaction_date_time, invoice_id,
	transaction_type, transaction_code, bill_total, cash_amount, card_amount, card_digits,
	wallet_in, wallet_out, other_payment, transaction_in_out, transaction_status,
	customer_id, selling_type, created_by, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.PaymentTransaction, error) {
	var p entity.PaymentTransaction
	err := row.Scan(
		&p.ID, &p.PaymentID, &p.CompanyID, &p.ShopID, &p.TransactionDateTime, &p.InvoiceID,
		&p.TransactionType, &p.TransactionCode, &p.BillTotal, &p.CashAmount, &p.CardAmount, &p.CardDigits,
		&p.WalletIn, &p.WalletOut, &p.OtherPayment, &p.TransactionInOut, &p.TransactionStatus,
		&p.CustomerID, &p.SellingType, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste el registro a nivel de orden.
func (r *PaymentTransactionRepo) Create(tx *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.PaymentID, tx.CompanyID, tx.ShopID, tx.TransactionDateTime, tx.InvoiceID,
		tx.TransactionType, tx.TransactionCode, tx.BillTotal, tx.CashAmount, tx.CardAmount, tx.CardDigits,
		tx.WalletIn, tx.WalletOut, tx.OtherPayment, tx.TransactionInOut, tx.TransactionStatus,
		tx.CustomerID, tx.SellingType, tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// GetByCode obtiene una orden por su código. Devuelve (nil, nil) si no existe.
func (r *PaymentTransactionRepo) GetByCode(companyID, shopID, transactionCode string) (*entity.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions
		WHERE company_id = $1 AND shop_id = $2 AND transaction_code = $3`
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, companyID, shopID, transactionCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment transaction: %w", err)
	}
	return p, nil
}

// UpdateStatus cambia el estado de la orden (cancelación o devoluciones).
func (r *PaymentTransactionRepo) UpdateStatus(companyID, shopID, transactionCode, status string) error {
	query := `
		UPDATE payment_transactions SET transaction_status = $4, updated_at = NOW()
		WHERE company_id = $1 AND shop_id = $2 AND transaction_code = $3`
	tag, err := r.q.Exec(context.Background(), query, companyID, shopID, transactionCode, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// ListByShop lista órdenes de una tienda, más recientes primero.
func (r *PaymentTransactionRepo) ListByShop(companyID, shopID string, limit, offset int) ([]*entity.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions
		WHERE company_id = $1 AND shop_id = $2
		ORDER BY transaction_date_time DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payment transactions: %w", err)
	}
	defer rows.Close()

	var txs []*entity.PaymentTransaction
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment transaction: %w", err)
		}
		txs = append(txs, p)
	}
	return txs, rows.Err()
}
