package order

import "context"

// ReceiptPDF genera el comprobante PDF de la orden para impresión en el
// punto de venta.
func (uc *UseCase) ReceiptPDF(ctx context.Context, companyID, shopID, transactionCode string) ([]byte, error) {
	details, err := uc.GetOrder(ctx, companyID, shopID, transactionCode)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceiptPDF(details)
}
