package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL
// (usable con pool o tx). GetForUpdate requiere un Querier transaccional:
// el bloqueo de fila solo tiene sentido dentro de una tx.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `company_id, shop_id, product_id, total_quantity, weighted_average_cost, minimum_quantity, updated_at`

func scanStock(row pgx.Row) (*entity.InventoryStock, error) {
	var s entity.InventoryStock
	err := row.Scan(
		&s.CompanyID, &s.ShopID, &s.ProductID,
		&s.TotalQuantity, &s.WeightedAverageCost, &s.MinimumQuantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene el stock de un producto en una tienda. Devuelve (nil, nil) si no existe.
func (r *StockRepo) Get(companyID, shopID, productID string) (*entity.InventoryStock, error) {
	query := `SELECT ` + stockColumns + ` FROM inventory_stocks
		WHERE company_id = $1 AND shop_id = $2 AND product_id = $3`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, companyID, shopID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene y bloquea la fila de stock (SELECT FOR UPDATE) para
// serializar débitos/créditos concurrentes. Ausencia es ErrInventoryNotFound:
// debitar o acreditar un producto sin fila de stock es un error del llamador.
func (r *StockRepo) GetForUpdate(companyID, shopID, productID string) (*entity.InventoryStock, error) {
	query := `SELECT ` + stockColumns + ` FROM inventory_stocks
		WHERE company_id = $1 AND shop_id = $2 AND product_id = $3 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, companyID, shopID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("lock stock: %w", err)
	}
	return s, nil
}

// Update persiste cantidad, WAC y mínimo de una fila existente.
func (r *StockRepo) Update(stock *entity.InventoryStock) error {
	query := `
		UPDATE inventory_stocks
		SET total_quantity = $4, weighted_average_cost = $5, minimum_quantity = $6, updated_at = NOW()
		WHERE company_id = $1 AND shop_id = $2 AND product_id = $3`
	tag, err := r.q.Exec(context.Background(), query,
		stock.CompanyID, stock.ShopID, stock.ProductID,
		stock.TotalQuantity, stock.WeightedAverageCost, stock.MinimumQuantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInventoryNotFound
	}
	return nil
}

// Upsert crea la fila de stock si no existe o la actualiza si existe. Solo
// lo usa la recepción GRN, único flujo autorizado a dar de alta stock.
func (r *StockRepo) Upsert(stock *entity.InventoryStock) error {
	query := `
		INSERT INTO inventory_stocks (company_id, shop_id, product_id, total_quantity, weighted_average_cost, minimum_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (company_id, shop_id, product_id)
		DO UPDATE SET total_quantity = EXCLUDED.total_quantity,
			weighted_average_cost = EXCLUDED.weighted_average_cost,
			minimum_quantity = EXCLUDED.minimum_quantity,
			updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query,
		stock.CompanyID, stock.ShopID, stock.ProductID,
		stock.TotalQuantity, stock.WeightedAverageCost, stock.MinimumQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByShop lista el stock completo de una tienda.
func (r *StockRepo) ListByShop(companyID, shopID string) ([]*entity.InventoryStock, error) {
	query := `SELECT ` + stockColumns + ` FROM inventory_stocks
		WHERE company_id = $1 AND shop_id = $2 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, companyID, shopID)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*entity.InventoryStock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}
