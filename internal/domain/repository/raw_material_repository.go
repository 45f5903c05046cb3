package repository

import (
	"time"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// RawMaterialTransactionRepository persistencia de transacciones de materia
// prima (GRN/GIN).
type RawMaterialTransactionRepository interface {
	Create(tx *entity.RawMaterialTransaction) error
	// ListNotCancelledUntil transacciones con estado distinto de Cancelled
	// hasta la fecha dada inclusive (bucket de compras del reporte de movimiento).
	ListNotCancelledUntil(companyID, shopID string, until time.Time) ([]*entity.RawMaterialTransaction, error)
}
