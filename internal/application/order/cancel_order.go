package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// CancelOrder revierte una orden completa: repone el inventario desde el
// snapshot usedProductDetails de cada línea (nunca re-resuelve la BOM, que
// pudo cambiar después de la venta) y marca pago y líneas como Cancelled.
// Precondición: la orden debe estar Completed; re-cancelar duplicaría los
// créditos, así que cualquier otro estado retorna ErrConflict.
func (uc *UseCase) CancelOrder(ctx context.Context, companyID, shopID, userID, transactionCode string) error {
	now := time.Now()
	var touched []*entity.InventoryStock
	var cancelled *entity.PaymentTransaction

	err := uc.txRunner.RunOrder(ctx, func(
		paymentRepo repository.PaymentTransactionRepository,
		fgRepo repository.FinishedGoodTransactionRepository,
		stockRepo repository.StockRepository,
		_ repository.WastageRepository,
		_ repository.SequenceRepository,
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
		if !payment.CanCancel() {
			return domain.ErrConflict
		}

		lines, err := fgRepo.ListByCode(companyID, shopID, transactionCode)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrTransactionNotFound
		}

		for _, line := range lines {
			for _, detail := range line.UsedProductDetails {
				stock, err := uc.ledger.CreditInTx(stockRepo, companyID, shopID, detail.ProductID, detail.Quantity, now)
				if err != nil {
					return err
				}
				touched = append(touched, stock)
			}
		}

		if err := paymentRepo.UpdateStatus(companyID, shopID, transactionCode, entity.StatusCancelled); err != nil {
			return err
		}
		if err := fgRepo.UpdateStatusByCode(companyID, shopID, transactionCode, entity.StatusCancelled); err != nil {
			return err
		}
		payment.TransactionStatus = entity.StatusCancelled
		cancelled = payment
		return nil
	})
	if err != nil {
		return err
	}

	uc.publishStocks(touched)
	uc.publisher.Publish(ports.EventCancelOrder, cancelled)
	uc.audit(companyID, shopID, userID, fmt.Sprintf("Order cancelled with transaction code: %s", transactionCode))
	return nil
}
