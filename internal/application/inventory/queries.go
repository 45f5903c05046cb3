package inventory

import (
	"context"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre stock y mermas. Opera con
// repos atados al pool; no necesita transacción.
type QueryUseCase struct {
	stockRepo   repository.StockRepository
	wastageRepo repository.WastageRepository
}

// NewQueryUseCase construye las consultas de inventario.
func NewQueryUseCase(stockRepo repository.StockRepository, wastageRepo repository.WastageRepository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, wastageRepo: wastageRepo}
}

// ListStock stock actual de la tienda con su bandera de reposición.
func (uc *QueryUseCase) ListStock(ctx context.Context, companyID, shopID string) ([]dto.StockItemDTO, error) {
	stocks, err := uc.stockRepo.ListByShop(companyID, shopID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItemDTO, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, dto.StockItemDTO{
			ProductID:           s.ProductID,
			TotalQuantity:       s.TotalQuantity,
			WeightedAverageCost: s.WeightedAverageCost,
			MinimumQuantity:     s.MinimumQuantity,
			NeedsRestock:        s.NeedsRestock(),
		})
	}
	return items, nil
}

// ListWastages mermas de la tienda, más recientes primero.
func (uc *QueryUseCase) ListWastages(ctx context.Context, companyID, shopID string, page dto.PageRequest) ([]dto.WastageDTO, error) {
	page.DefaultPage()
	wastages, err := uc.wastageRepo.ListByShop(companyID, shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WastageDTO, 0, len(wastages))
	for _, w := range wastages {
		items = append(items, dto.WastageDTO{
			WastageID: w.WastageID,
			ProductID: w.ProductID,
			Quantity:  w.Quantity,
			UomID:     w.UomID,
			Reason:    w.Reason,
			Condition: w.Condition,
			Date:      w.Date,
		})
	}
	return items, nil
}
