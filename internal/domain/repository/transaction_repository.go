package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// PaymentTransactionRepository persistencia del registro a nivel de orden.
// GetByCode devuelve (nil, nil) si no existe.
type PaymentTransactionRepository interface {
	Create(tx *entity.PaymentTransaction) error
	GetByCode(companyID, shopID, transactionCode string) (*entity.PaymentTransaction, error)
	UpdateStatus(companyID, shopID, transactionCode, status string) error
	ListByShop(companyID, shopID string, limit, offset int) ([]*entity.PaymentTransaction, error)
}

// FinishedGoodTransactionRepository persistencia de las líneas de venta.
type FinishedGoodTransactionRepository interface {
	Create(tx *entity.FinishedGoodTransaction) error
	ListByCode(companyID, shopID, transactionCode string) ([]*entity.FinishedGoodTransaction, error)
	// UpdateReturn persiste cantidad restante y nuevo estado de una línea
	// tras una devolución parcial o total.
	UpdateReturn(id string, remainingQty decimal.Decimal, status string) error
	UpdateStatusByCode(companyID, shopID, transactionCode, status string) error
	// ListCompletedInRange líneas de venta Completed en el rango (reporte de ventas).
	ListCompletedInRange(companyID, shopID string, start, end time.Time) ([]*entity.FinishedGoodTransaction, error)
	// ListNotCancelledUntil líneas con estado distinto de Cancelled hasta la
	// fecha dada inclusive (reporte de movimiento: buckets antes/durante).
	ListNotCancelledUntil(companyID, shopID string, until time.Time) ([]*entity.FinishedGoodTransaction, error)
}

// WastageRepository persistencia de mermas.
type WastageRepository interface {
	Create(w *entity.Wastage) error
	ListByShop(companyID, shopID string, limit, offset int) ([]*entity.Wastage, error)
}
