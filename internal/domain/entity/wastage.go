package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wastage merma registrada cuando un ítem devuelto llega Damaged o Expired.
// Inmutable una vez creada; no afecta inventario (la mercadería se descarta).
type Wastage struct {
	ID        string
	WastageID string
	CompanyID string
	ShopID    string
	ProductID string
	Quantity  decimal.Decimal
	UomID     string
	Reason    string
	Condition string
	Date      time.Time
	UserID    string
	CreatedAt time.Time
}
