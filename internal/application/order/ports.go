package order

import (
	"context"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios del ciclo de vida de órdenes atados a esa tx. Es la garantía
// de todo-o-nada: inventario, transacción de pago, líneas, mermas y balance
// diario se confirman juntos o ninguno.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		paymentRepo repository.PaymentTransactionRepository,
		fgRepo repository.FinishedGoodTransactionRepository,
		stockRepo repository.StockRepository,
		wastageRepo repository.WastageRepository,
		seqRepo repository.SequenceRepository,
		balanceRepo repository.DailyBalanceRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de una orden para impresión POS.
type ReceiptGenerator interface {
	GenerateReceiptPDF(order *dto.OrderDetails) ([]byte, error)
}
