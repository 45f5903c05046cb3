package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.WastageRepository = (*WastageRepo)(nil)

// WastageRepo implementación del puerto WastageRepository sobre PostgreSQL (usable con pool o tx).
type WastageRepo struct {
	q Querier
}

// NewWastageRepository construye el adaptador de persistencia de mermas. Pasar pool o tx (Querier).
func NewWastageRepository(q Querier) *WastageRepo {
	return &WastageRepo{q: q}
}

// Create persiste un registro de merma.
func (r *WastageRepo) Create(w *entity.Wastage) error {
	query := `
		INSERT INTO wastages (id, wastage_id, company_id, shop_id, product_id, quantity, uom_id, reason, condition, date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.WastageID, w.CompanyID, w.ShopID, w.ProductID, w.Quantity,
		w.UomID, w.Reason, w.Condition, w.Date, w.UserID, w.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert wastage: %w", err)
	}
	return nil
}

// ListByShop lista mermas de una tienda, más recientes primero.
func (r *WastageRepo) ListByShop(companyID, shopID string, limit, offset int) ([]*entity.Wastage, error) {
	query := `
		SELECT id, wastage_id, company_id, shop_id, product_id, quantity, uom_id, reason, condition, date, user_id, created_at
		FROM wastages WHERE company_id = $1 AND shop_id = $2
		ORDER BY date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wastages: %w", err)
	}
	defer rows.Close()

	var wastages []*entity.Wastage
	for rows.Next() {
		var w entity.Wastage
		if err := rows.Scan(&w.ID, &w.WastageID, &w.CompanyID, &w.ShopID, &w.ProductID, &w.Quantity,
			&w.UomID, &w.Reason, &w.Condition, &w.Date, &w.UserID, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wastage: %w", err)
		}
		wastages = append(wastages, &w)
	}
	return wastages, rows.Err()
}
