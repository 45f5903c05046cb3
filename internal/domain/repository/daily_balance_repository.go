package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalanceRepository acumulado de caja diario por tienda.
type DailyBalanceRepository interface {
	// Apply suma amount al acumulado del día (upsert).
	Apply(companyID, shopID, userID string, date time.Time, amount decimal.Decimal, remarks string) error
}
