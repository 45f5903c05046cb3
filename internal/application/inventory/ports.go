package inventory

import (
	"context"

	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la recepción GRN.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		rmtRepo repository.RawMaterialTransactionRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
