package order

import (
	"context"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// GetOrder devuelve la orden completa (pago + líneas) por transactionCode.
// Lecturas fuera de transacción: no hay mutación.
func (uc *UseCase) GetOrder(ctx context.Context, companyID, shopID, transactionCode string) (*dto.OrderDetails, error) {
	payment, err := uc.paymentRepo.GetByCode(companyID, shopID, transactionCode)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrTransactionNotFound
	}
	lines, err := uc.fgRepo.ListByCode(companyID, shopID, transactionCode)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrTransactionNotFound
	}
	return toOrderDetails(payment, lines), nil
}

// ListOrders listado paginado de órdenes de la tienda.
func (uc *UseCase) ListOrders(ctx context.Context, companyID, shopID string, page dto.PageRequest) ([]dto.OrderSummary, error) {
	page.DefaultPage()
	payments, err := uc.paymentRepo.ListByShop(companyID, shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummary, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.OrderSummary{
			TransactionCode:     p.TransactionCode,
			TransactionDateTime: p.TransactionDateTime,
			BillTotal:           p.BillTotal,
			TransactionStatus:   p.TransactionStatus,
			CustomerID:          p.CustomerID,
		})
	}
	return out, nil
}

func toOrderDetails(payment *entity.PaymentTransaction, lines []*entity.FinishedGoodTransaction) *dto.OrderDetails {
	details := &dto.OrderDetails{
		TransactionCode:     payment.TransactionCode,
		CompanyID:           payment.CompanyID,
		ShopID:              payment.ShopID,
		TransactionDateTime: payment.TransactionDateTime,
		InvoiceID:           payment.InvoiceID,
		BillTotal:           payment.BillTotal,
		CashAmount:          payment.CashAmount,
		CardAmount:          payment.CardAmount,
		WalletIn:            payment.WalletIn,
		WalletOut:           payment.WalletOut,
		OtherPayment:        payment.OtherPayment,
		TransactionStatus:   payment.TransactionStatus,
		CustomerID:          payment.CustomerID,
		FinishedGoods:       make([]dto.FinishedGoodLineDTO, 0, len(lines)),
	}
	for _, l := range lines {
		used := make([]dto.UsedProductDetailDTO, 0, len(l.UsedProductDetails))
		for _, d := range l.UsedProductDetails {
			used = append(used, dto.UsedProductDetailDTO{
				ProductID:  d.ProductID,
				Quantity:   d.Quantity,
				CurrentWAC: d.CurrentWAC,
			})
		}
		details.FinishedGoods = append(details.FinishedGoods, dto.FinishedGoodLineDTO{
			FinishedGoodID:     l.FinishedGoodID,
			UsedProductDetails: used,
			FinishedGoodQty:    l.FinishedGoodQty,
			SellingPrice:       l.SellingPrice,
			DiscountAmount:     l.DiscountAmount,
			TransactionStatus:  l.TransactionStatus,
		})
	}
	return details
}
