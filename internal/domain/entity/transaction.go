package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de transacción (orden y línea).
const (
	StatusCompleted         = "Completed"
	StatusCancelled         = "Cancelled"
	StatusReturned          = "Returned"
	StatusPartiallyReturned = "Partially Returned"
)

// Tipos y dirección de transacción.
const (
	TransactionTypeSales = "Sales"
	TransactionTypeGRN   = "GRN"

	InOutIn  = "In"
	InOutOut = "Out"
)

// Condición de un ítem devuelto.
const (
	ConditionGood    = "Good"
	ConditionDamaged = "Damaged"
	ConditionExpired = "Expired"
)

// PaymentTransaction registro a nivel de orden: montos de pago y estado
// agregado. Comparte transactionCode con sus FinishedGoodTransactions pero
// son agregados independientes (sin cascada); el motor mantiene la
// consistencia entre ambos manualmente. Nunca se borra.
type PaymentTransaction struct {
	ID                  string
	PaymentID           string
	CompanyID           string
	ShopID              string
	TransactionDateTime time.Time
	InvoiceID           string
	TransactionType     string
	TransactionCode     string
	BillTotal           decimal.Decimal
	CashAmount          decimal.Decimal
	CardAmount          decimal.Decimal
	CardDigits          string
	WalletIn            decimal.Decimal
	WalletOut           decimal.Decimal
	OtherPayment        decimal.Decimal
	TransactionInOut    string
	TransactionStatus   string
	CustomerID          string
	SellingType         string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CanCancel indica si la orden admite cancelación. Solo órdenes Completed:
// cancelar dos veces duplicaría los créditos de inventario.
func (p *PaymentTransaction) CanCancel() bool {
	return p.TransactionStatus == StatusCompleted
}

// UsedProductDetail consumo de materia prima capturado al momento de la
// venta (cantidad ya escalada por la cantidad vendida, y WAC vigente al
// debitar). La reversión usa este snapshot tal cual, nunca re-resuelve la
// BOM: protege contra cambios de receta posteriores a la venta.
type UsedProductDetail struct {
	ProductID  string          `json:"productId"`
	Quantity   decimal.Decimal `json:"quantity"`
	CurrentWAC decimal.Decimal `json:"currentWAC"`
}

// FinishedGoodTransaction una línea de venta: producto terminado, cantidad
// (decrece con devoluciones parciales) y el snapshot de consumo. Nunca se
// borra; solo cambian estado y cantidad.
type FinishedGoodTransaction struct {
	ID                  string
	FtID                string
	CompanyID           string
	ShopID              string
	FinishedGoodID      string
	UsedProductDetails  []UsedProductDetail
	TransactionDateTime time.Time
	TransactionType     string
	OrderNo             string
	TransactionCode     string
	SellingType         string
	SellingPrice        decimal.Decimal
	DiscountAmount      decimal.Decimal
	CustomerID          string
	TransactionInOut    string
	FinishedGoodQty     decimal.Decimal
	TransactionStatus   string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CanReturn indica si la línea acepta una devolución. Solo líneas Completed:
// política deliberada de una devolución por línea (una línea Partially
// Returned ya no se puede volver a devolver por esta vía).
func (t *FinishedGoodTransaction) CanReturn() bool {
	return t.TransactionStatus == StatusCompleted
}

// IsReturnedOrPartial indica si la línea cuenta como devuelta para el
// estado agregado de la orden.
func (t *FinishedGoodTransaction) IsReturnedOrPartial() bool {
	return t.TransactionStatus == StatusReturned || t.TransactionStatus == StatusPartiallyReturned
}

// AggregateReturnStatus calcula el estado de la orden tras devoluciones:
// Returned solo cuando TODAS las líneas están Returned o Partially Returned
// (regla original conservada: una línea parcial satisface el agregado).
func AggregateReturnStatus(lines []*FinishedGoodTransaction) string {
	for _, l := range lines {
		if !l.IsReturnedOrPartial() {
			return StatusPartiallyReturned
		}
	}
	return StatusReturned
}
