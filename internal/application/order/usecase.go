package order

import (
	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

// Tipos de secuencia para códigos legibles.
const (
	seqKindSales   = "SalesID"
	seqKindWastage = "WastageID"
)

// UseCase motor del ciclo de vida de órdenes: crear, cancelar y devolver
// parcialmente, manteniendo consistentes transacción de pago, líneas de
// venta y stock. Cada operación corre en una sola transacción de BD.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	bomRepo     repository.BOMRepository
	paymentRepo repository.PaymentTransactionRepository
	fgRepo      repository.FinishedGoodTransactionRepository
	ledger      *appinventory.Ledger
	publisher   ports.EventPublisher
	receipts    ReceiptGenerator
	log         *logger.Logger
}

// New construye el motor de órdenes.
func New(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	bomRepo repository.BOMRepository,
	paymentRepo repository.PaymentTransactionRepository,
	fgRepo repository.FinishedGoodTransactionRepository,
	ledger *appinventory.Ledger,
	publisher ports.EventPublisher,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		bomRepo:     bomRepo,
		paymentRepo: paymentRepo,
		fgRepo:      fgRepo,
		ledger:      ledger,
		publisher:   publisher,
		receipts:    receipts,
		log:         log,
	}
}

// resolveBOM obtiene la receta de un producto terminado. BOM ausente o con
// cero entradas fallan igual: no se vende a costo cero por accidente.
func (uc *UseCase) resolveBOM(companyID, finishedGoodID string) (*entity.BillOfMaterials, error) {
	bom, err := uc.bomRepo.GetByFinishedGoodID(companyID, finishedGoodID)
	if err != nil {
		return nil, err
	}
	if bom.IsEmpty() {
		return nil, domain.ErrBOMNotFound
	}
	if len(bom.Items) > entity.MaxBOMItems {
		return nil, domain.ErrInvalidInput
	}
	return bom, nil
}

// audit log best-effort de operaciones exitosas; nunca falla la operación.
func (uc *UseCase) audit(companyID, shopID, userID, message string) {
	uc.log.Info().
		Str("company_id", companyID).
		Str("shop_id", shopID).
		Str("user_id", userID).
		Msg(message)
}

// publishStocks emite updateInventory por cada fila de stock mutada,
// después del commit. Advisory: pantallas de stock en tiempo real.
func (uc *UseCase) publishStocks(stocks []*entity.InventoryStock) {
	for _, s := range stocks {
		uc.publisher.Publish(ports.EventUpdateInventory, s)
	}
}
