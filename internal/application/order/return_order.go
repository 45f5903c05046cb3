package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// ReturnOrderItems devolución parcial con granularidad de línea.
//
// Por cada ítem {productId, quantity, condition}:
//   - la línea debe estar Completed (política de una devolución por línea:
//     una línea ya Partially Returned no vuelve a matchear);
//   - quantity no puede exceder la cantidad restante de la línea;
//   - Good repone inventario (expansión BOM o crédito directo);
//   - Damaged/Expired crea una merma y NO repone inventario.
//
// El estado agregado del pago se recalcula al final: Returned solo si todas
// las líneas quedaron Returned o Partially Returned.
func (uc *UseCase) ReturnOrderItems(ctx context.Context, companyID, shopID, userID, transactionCode string, in dto.ReturnOrderRequest) error {
	if err := dto.Validate(in); err != nil {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}

	// Productos y recetas fuera de la tx, solo lectura.
	productsByID := make(map[string]*entity.Product, len(in.Items))
	bomsByID := make(map[string]*entity.BillOfMaterials)
	for _, item := range in.Items {
		if _, ok := productsByID[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByProductID(companyID, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		productsByID[item.ProductID] = product
		if item.Condition == entity.ConditionGood && product.HasRawMaterials {
			bom, err := uc.resolveBOM(companyID, item.ProductID)
			if err != nil {
				return err
			}
			bomsByID[item.ProductID] = bom
		}
	}

	now := time.Now()
	var touched []*entity.InventoryStock
	var returned *entity.PaymentTransaction

	err := uc.txRunner.RunOrder(ctx, func(
		paymentRepo repository.PaymentTransactionRepository,
		fgRepo repository.FinishedGoodTransactionRepository,
		stockRepo repository.StockRepository,
		wastageRepo repository.WastageRepository,
		seqRepo repository.SequenceRepository,
		_ repository.DailyBalanceRepository,
	) error {
		touched = touched[:0]

		payment, err := paymentRepo.GetByCode(companyID, shopID, transactionCode)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.ErrTransactionNotFound
		}

		lines, err := fgRepo.ListByCode(companyID, shopID, transactionCode)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrTransactionNotFound
		}

		for _, item := range in.Items {
			line := findReturnable(lines, item.ProductID)
			if line == nil {
				return domain.ErrTransactionNotFound
			}
			if item.Quantity.GreaterThan(line.FinishedGoodQty) {
				return domain.ErrInvalidQuantity
			}

			product := productsByID[item.ProductID]
			switch item.Condition {
			case entity.ConditionGood:
				switch {
				case product.HasRawMaterials:
					bom := bomsByID[item.ProductID]
					for _, bomItem := range bom.Items {
						stock, err := uc.ledger.CreditInTx(stockRepo, companyID, shopID,
							bomItem.ProductID, bomItem.Qty.Mul(item.Quantity), now)
						if err != nil {
							return err
						}
						touched = append(touched, stock)
					}
				case product.RequiresGRN:
					stock, err := uc.ledger.CreditInTx(stockRepo, companyID, shopID,
						item.ProductID, item.Quantity, now)
					if err != nil {
						return err
					}
					touched = append(touched, stock)
				}
			case entity.ConditionDamaged, entity.ConditionExpired:
				// La mercadería se descarta: merma sí, crédito no.
				n, err := seqRepo.Next(companyID, shopID, seqKindWastage)
				if err != nil {
					return err
				}
				w := &entity.Wastage{
					ID:        uuid.New().String(),
					WastageID: fmt.Sprintf("%s-%d", seqKindWastage, n),
					CompanyID: companyID,
					ShopID:    shopID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					UomID:     "Unit",
					Reason:    "Returned Order",
					Condition: item.Condition,
					Date:      now,
					UserID:    userID,
					CreatedAt: now,
				}
				if err := wastageRepo.Create(w); err != nil {
					return err
				}
			default:
				return domain.ErrInvalidInput
			}

			remaining := line.FinishedGoodQty.Sub(item.Quantity)
			status := entity.StatusPartiallyReturned
			if remaining.IsZero() {
				status = entity.StatusReturned
			}
			if err := fgRepo.UpdateReturn(line.ID, remaining, status); err != nil {
				return err
			}
			line.FinishedGoodQty = remaining
			line.TransactionStatus = status
		}

		aggregate := entity.AggregateReturnStatus(lines)
		if err := paymentRepo.UpdateStatus(companyID, shopID, transactionCode, aggregate); err != nil {
			return err
		}
		payment.TransactionStatus = aggregate
		returned = payment
		return nil
	})
	if err != nil {
		return err
	}

	uc.publishStocks(touched)
	uc.publisher.Publish(ports.EventOrderReturned, returned)
	uc.audit(companyID, shopID, userID, fmt.Sprintf("Order partially returned with transaction code: %s", transactionCode))
	return nil
}

// findReturnable busca la línea Completed del producto. Solo matchea
// Completed: restricción deliberada, no descuido (ver política de una
// devolución por línea).
func findReturnable(lines []*entity.FinishedGoodTransaction, productID string) *entity.FinishedGoodTransaction {
	for _, l := range lines {
		if l.FinishedGoodID == productID && l.CanReturn() {
			return l
		}
	}
	return nil
}
