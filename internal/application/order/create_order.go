package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// CreateOrder registra una venta completa y devuelve el transactionCode.
//
// Por cada línea, según la clasificación del producto:
//   - HasRawMaterials: expande la BOM y debita cada materia prima por
//     qty_receta * qty_línea, capturando el WAC vigente al debitar.
//   - RequiresGRN: debita el stock del propio producto.
//   - ninguno: sin movimiento de inventario (ítem de servicio).
//
// Transacción de pago, líneas, débitos y balance diario se confirman en una
// sola transacción: un débito insuficiente en la línea N revierte también
// las líneas 1..N-1 (todo-o-nada).
func (uc *UseCase) CreateOrder(ctx context.Context, companyID, shopID, userID string, in dto.CreateOrderRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if !item.Quantity.GreaterThan(decimal.Zero) || item.SellingPrice.IsNegative() {
			return "", domain.ErrInvalidInput
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
			return "", err
		}
		if product == nil {
			return "", domain.ErrProductNotFound
		}
		productsByID[item.ProductID] = product
		if product.HasRawMaterials {
			bom, err := uc.resolveBOM(companyID, item.ProductID)
			if err != nil {
				return "", err
			}
			bomsByID[item.ProductID] = bom
		}
	}

	now := time.Now()
	var transactionCode string
	var touched []*entity.InventoryStock

	err := uc.txRunner.RunOrder(ctx, func(
		paymentRepo repository.PaymentTransactionRepository,
		fgRepo repository.FinishedGoodTransactionRepository,
		stockRepo repository.StockRepository,
		_ repository.WastageRepository,
		seqRepo repository.SequenceRepository,
		balanceRepo repository.DailyBalanceRepository,
	) error {
		touched = touched[:0]

		n, err := seqRepo.Next(companyID, shopID, seqKindSales)
		if err != nil {
			return err
		}
		transactionCode = fmt.Sprintf("%s-%d", seqKindSales, n)

		payment := &entity.PaymentTransaction{
			ID:                  uuid.New().String(),
			PaymentID:           fmt.Sprintf("PaymentID-%d", n),
			CompanyID:           companyID,
			ShopID:              shopID,
			TransactionDateTime: now,
			InvoiceID:           in.InvoiceID,
			TransactionType:     entity.TransactionTypeSales,
			TransactionCode:     transactionCode,
			BillTotal:           in.BillTotal,
			CashAmount:          in.CashAmount,
			CardAmount:          in.CardAmount,
			CardDigits:          in.CardDigits,
			WalletIn:            in.WalletIn,
			WalletOut:           in.WalletOut,
			OtherPayment:        in.OtherPayment,
			TransactionInOut:    entity.InOutIn,
			TransactionStatus:   entity.StatusCompleted,
			CustomerID:          in.CustomerID,
			SellingType:         in.SellingType,
			CreatedBy:           userID,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		for i, item := range in.Items {
			product := productsByID[item.ProductID]
			var usedDetails []entity.UsedProductDetail

			switch {
			case product.HasRawMaterials:
				bom := bomsByID[item.ProductID]
				for _, bomItem := range bom.Items {
					qty := bomItem.Qty.Mul(item.Quantity)
					stock, err := uc.ledger.DebitInTx(stockRepo, companyID, shopID, bomItem.ProductID, qty, now)
					if err != nil {
						return err
					}
					// WAC capturado con la fila bloqueada: es el costo al
					// que realmente se consume.
					usedDetails = append(usedDetails, entity.UsedProductDetail{
						ProductID:  bomItem.ProductID,
						Quantity:   qty,
						CurrentWAC: stock.WeightedAverageCost,
					})
					touched = append(touched, stock)
				}
			case product.RequiresGRN:
				stock, err := uc.ledger.DebitInTx(stockRepo, companyID, shopID, item.ProductID, item.Quantity, now)
				if err != nil {
					return err
				}
				usedDetails = append(usedDetails, entity.UsedProductDetail{
					ProductID:  item.ProductID,
					Quantity:   item.Quantity,
					CurrentWAC: stock.WeightedAverageCost,
				})
				touched = append(touched, stock)
			default:
				// Sin seguimiento de stock: usedProductDetails queda vacío.
			}

			// índice de línea con padding: ft_id se ordena como texto y
			// FTID-5-10 quedaría antes que FTID-5-2 sin él
			ft := &entity.FinishedGoodTransaction{
				ID:                  uuid.New().String(),
				FtID:                fmt.Sprintf("FTID-%d-%03d", n, i+1),
				CompanyID:           companyID,
				ShopID:              shopID,
				FinishedGoodID:      item.ProductID,
				UsedProductDetails:  usedDetails,
				TransactionDateTime: now,
				TransactionType:     entity.TransactionTypeSales,
				OrderNo:             in.InvoiceID,
				TransactionCode:     transactionCode,
				SellingType:         in.SellingType,
				SellingPrice:        item.SellingPrice,
				DiscountAmount:      item.DiscountAmount,
				CustomerID:          in.CustomerID,
				TransactionInOut:    entity.InOutOut,
				FinishedGoodQty:     item.Quantity,
				TransactionStatus:   entity.StatusCompleted,
				CreatedBy:           userID,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err := fgRepo.Create(ft); err != nil {
				return err
			}
		}

		remarks := fmt.Sprintf("Order processed with transaction code: %s", transactionCode)
		return balanceRepo.Apply(companyID, shopID, userID, now, in.BillTotal, remarks)
	})
	if err != nil {
		return "", err
	}

	uc.publishStocks(touched)
	uc.audit(companyID, shopID, userID, fmt.Sprintf("Order created with transaction code: %s", transactionCode))
	return transactionCode, nil
}
