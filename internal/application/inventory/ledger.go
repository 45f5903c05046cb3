package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ledger operaciones atómicas de débito/crédito sobre el stock de una
// tienda. Los métodos *InTx asumen una transacción abierta: el stockRepo
// recibido debe estar atado a ella, y GetForUpdate serializa operaciones
// concurrentes sobre la misma fila. La no-negatividad se verifica con la
// fila bloqueada, así un débito que dejaría el stock bajo cero nunca
// persiste.
type Ledger struct{}

// NewLedger construye el servicio de ledger.
func NewLedger() *Ledger { return &Ledger{} }

// DebitInTx descuenta qty del stock (companyId, shopId, productId).
// Retorna ErrInventoryNotFound si la fila no existe y ErrInsufficientStock
// si el resultado sería negativo; en ambos casos nada se persiste y el
// caller debe abortar la transacción completa.
func (l *Ledger) DebitInTx(
	stockRepo repository.StockRepository,
	companyID, shopID, productID string,
	qty decimal.Decimal,
	now time.Time,
) (*entity.InventoryStock, error) {
	stock, err := stockRepo.GetForUpdate(companyID, shopID, productID)
	if err != nil {
		return nil, err
	}
	newQty := stock.TotalQuantity.Sub(qty)
	if newQty.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	stock.TotalQuantity = newQty
	stock.UpdatedAt = now
	if err := stockRepo.Update(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// CreditInTx repone qty al stock (cancelación o devolución en buen estado).
// La fila debe existir: ErrInventoryNotFound si no.
func (l *Ledger) CreditInTx(
	stockRepo repository.StockRepository,
	companyID, shopID, productID string,
	qty decimal.Decimal,
	now time.Time,
) (*entity.InventoryStock, error) {
	stock, err := stockRepo.GetForUpdate(companyID, shopID, productID)
	if err != nil {
		return nil, err
	}
	stock.TotalQuantity = stock.TotalQuantity.Add(qty)
	stock.UpdatedAt = now
	if err := stockRepo.Update(stock); err != nil {
		return nil, err
	}
	return stock, nil
}
