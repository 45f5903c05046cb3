package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalance acumulado de caja por tienda y día. Cada orden completada
// suma su total; colaborador aguas abajo del motor de órdenes.
type DailyBalance struct {
	CompanyID   string
	ShopID      string
	Date        time.Time // truncada a día
	CloseAmount decimal.Decimal
	Remarks     string
	UpdatedBy   string
	UpdatedAt   time.Time
}
