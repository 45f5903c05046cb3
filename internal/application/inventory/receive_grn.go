package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

// Tipo de secuencia para códigos GRN.
const seqKindGRN = "GRN"

// ReceiveGRNUseCase registra una recepción de mercadería (GRN): crea la
// transacción de materia prima, suma stock y recalcula el costo promedio
// ponderado con el CostCalculator de dominio. Todo en una sola transacción.
type ReceiveGRNUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	publisher   ports.EventPublisher
	log         *logger.Logger
}

// NewReceiveGRNUseCase construye el caso de uso.
func NewReceiveGRNUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	publisher ports.EventPublisher,
	log *logger.Logger,
) *ReceiveGRNUseCase {
	return &ReceiveGRNUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// ReceiveGRN procesa la recepción y devuelve el código GRN generado.
func (uc *ReceiveGRNUseCase) ReceiveGRN(ctx context.Context, companyID, shopID, userID string, in dto.ReceiveGRNRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitCost.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	// Producto fuera de la tx, solo lectura
	product, err := uc.productRepo.GetByProductID(companyID, in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrProductNotFound
	}

	now := time.Now()
	var code string
	var updated *entity.InventoryStock

	err = uc.txRunner.RunInventory(ctx, func(
		stockRepo repository.StockRepository,
		rmtRepo repository.RawMaterialTransactionRepository,
		seqRepo repository.SequenceRepository,
	) error {
		n, err := seqRepo.Next(companyID, shopID, seqKindGRN)
		if err != nil {
			return err
		}
		code = fmt.Sprintf("%s-%d", seqKindGRN, n)

		// Lectura con lock de fila: dos recepciones concurrentes del mismo
		// producto deben serializar, o la segunda pisaría cantidad y costo
		// promedio calculados sobre una base obsoleta. La recepción sí puede
		// dar de alta el stock de un producto nuevo.
		stock, err := stockRepo.GetForUpdate(companyID, shopID, in.ProductID)
		if err != nil && !errors.Is(err, domain.ErrInventoryNotFound) {
			return err
		}
		if stock == nil {
			stock = &entity.InventoryStock{
				CompanyID: companyID,
				ShopID:    shopID,
				ProductID: in.ProductID,
			}
		}
		stock.WeightedAverageCost = domaininv.CostCalculator(
			stock.TotalQuantity, stock.WeightedAverageCost, in.Quantity, in.UnitCost,
		)
		stock.TotalQuantity = stock.TotalQuantity.Add(in.Quantity)
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		updated = stock

		rmt := &entity.RawMaterialTransaction{
			ID:                  uuid.New().String(),
			RmtID:               fmt.Sprintf("RMTID-%d", n),
			CompanyID:           companyID,
			ShopID:              shopID,
			SupplierID:          in.SupplierID,
			ProductID:           in.ProductID,
			TransactionDateTime: now,
			TransactionType:     entity.TransactionTypeGRN,
			TransactionCode:     code,
			RawMatInOut:         entity.InOutIn,
			UnitCost:            in.UnitCost,
			Quantity:            in.Quantity,
			TotalCost:           in.UnitCost.Mul(in.Quantity),
			Remarks:             in.Remarks,
			TransactionStatus:   entity.StatusCompleted,
			CreatedBy:           userID,
			CreatedAt:           now,
		}
		return rmtRepo.Create(rmt)
	})
	if err != nil {
		return "", err
	}

	// Fuera de la frontera transaccional: notificación y log, best-effort.
	uc.publisher.Publish(ports.EventUpdateInventory, updated)
	uc.log.Info().
		Str("company_id", companyID).
		Str("shop_id", shopID).
		Str("user_id", userID).
		Str("grn_code", code).
		Msg("recepción de mercadería registrada")

	return code, nil
}
