package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre PostgreSQL. Las
// entradas de la receta viven en una columna JSONB; el índice único sobre
// (company_id, finished_good_id) garantiza una sola BOM por producto.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de lectura de recetas. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// GetByFinishedGoodID obtiene la receta de un producto terminado. Devuelve (nil, nil) si no existe.
func (r *BOMRepo) GetByFinishedGoodID(companyID, finishedGoodID string) (*entity.BillOfMaterials, error) {
	query := `
		SELECT bom_id, company_id, finished_good_id, items, created_by, created_at, updated_at
		FROM bill_of_materials WHERE company_id = $1 AND finished_good_id = $2`
	var b entity.BillOfMaterials
	err := r.q.QueryRow(context.Background(), query, companyID, finishedGoodID).Scan(
		&b.BomID, &b.CompanyID, &b.FinishedGoodID, &b.Items, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	return &b, nil
}

// ListByCompany lista todas las recetas de una empresa.
func (r *BOMRepo) ListByCompany(companyID string) ([]*entity.BillOfMaterials, error) {
	query := `
		SELECT bom_id, company_id, finished_good_id, items, created_by, created_at, updated_at
		FROM bill_of_materials WHERE company_id = $1`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()

	var boms []*entity.BillOfMaterials
	for rows.Next() {
		var b entity.BillOfMaterials
		if err := rows.Scan(&b.BomID, &b.CompanyID, &b.FinishedGoodID, &b.Items, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		boms = append(boms, &b)
	}
	return boms, rows.Err()
}
