package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.DailyBalanceRepository = (*DailyBalanceRepo)(nil)

// DailyBalanceRepo acumulado de caja diario sobre PostgreSQL. Upsert
// aditivo: cada orden suma su total al cierre del día.
type DailyBalanceRepo struct {
	q Querier
}

// NewDailyBalanceRepository construye el adaptador de balance diario. Pasar pool o tx (Querier).
func NewDailyBalanceRepository(q Querier) *DailyBalanceRepo {
	return &DailyBalanceRepo{q: q}
}

// Apply suma amount al acumulado del día de la tienda.
func (r *DailyBalanceRepo) Apply(companyID, shopID, userID string, date time.Time, amount decimal.Decimal, remarks string) error {
	day := date.Truncate(24 * time.Hour)
	query := `
		INSERT INTO daily_balances (company_id, shop_id, date, close_amount, remarks, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (company_id, shop_id, date)
		DO UPDATE SET close_amount = daily_balances.close_amount + EXCLUDED.close_amount,
			remarks = EXCLUDED.remarks,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query, companyID, shopID, day, amount, remarks, userID)
	if err != nil {
		return fmt.Errorf("apply daily balance: %w", err)
	}
	return nil
}
