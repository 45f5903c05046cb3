package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador atómico sobre PostgreSQL. El upsert con RETURNING
// entrega números únicos y monotónicos por (empresa, tienda, tipo) incluso
// bajo concurrencia; sin huecos salvo transacciones abortadas.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el contador de códigos. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el siguiente valor del contador.
func (r *SequenceRepo) Next(companyID, shopID, kind string) (int64, error) {
	query := `
		INSERT INTO sequences (company_id, shop_id, kind, value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, shop_id, kind)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, companyID, shopID, kind).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", kind, err)
	}
	return value, nil
}
