package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// UseCase agregador de reportes. Solo lectura: reproduce el historial de
// transacciones persistido, nunca muta.
type UseCase struct {
	fgRepo      repository.FinishedGoodTransactionRepository
	rmtRepo     repository.RawMaterialTransactionRepository
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// New construye el agregador.
func New(
	fgRepo repository.FinishedGoodTransactionRepository,
	rmtRepo repository.RawMaterialTransactionRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		fgRepo:      fgRepo,
		rmtRepo:     rmtRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// SalesReport ventas y utilidad del período sobre líneas Completed.
// Por línea: sale = sellingPrice * qty; cost = Σ currentWAC * quantity del
// snapshot; profit = sale - cost - discount. Agrega por producto terminado.
func (uc *UseCase) SalesReport(ctx context.Context, companyID, shopID string, start, end time.Time) (*dto.SalesReportResponse, error) {
	transactions, err := uc.fgRepo.ListCompletedInRange(companyID, shopID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{StartDate: start, EndDate: end}
	byProduct := make(map[string]*dto.SalesDetailDTO)

	for _, t := range transactions {
		sale := t.SellingPrice.Mul(t.FinishedGoodQty)
		cost := decimal.Zero
		for _, used := range t.UsedProductDetails {
			cost = cost.Add(used.CurrentWAC.Mul(used.Quantity))
		}
		discount := t.DiscountAmount
		profit := sale.Sub(cost).Sub(discount)

		resp.TotalSales = resp.TotalSales.Add(sale)
		resp.TotalProductCost = resp.TotalProductCost.Add(cost)
		resp.TotalCost = resp.TotalCost.Add(cost).Add(discount)
		resp.TotalProfit = resp.TotalProfit.Add(profit)
		resp.TotalDiscounts = resp.TotalDiscounts.Add(discount)

		detail, ok := byProduct[t.FinishedGoodID]
		if !ok {
			detail = &dto.SalesDetailDTO{
				FinishedGoodID: t.FinishedGoodID,
				UnitPrice:      t.SellingPrice,
			}
			byProduct[t.FinishedGoodID] = detail
		}
		detail.FinishedGoodQty = detail.FinishedGoodQty.Add(t.FinishedGoodQty)
		detail.Sale = detail.Sale.Add(sale)
		detail.Cost = detail.Cost.Add(cost)
		detail.Profit = detail.Profit.Add(profit)
	}

	resp.SalesDetails = make([]dto.SalesDetailDTO, 0, len(byProduct))
	for _, d := range byProduct {
		resp.SalesDetails = append(resp.SalesDetails, *d)
	}
	// Orden estable para respuestas deterministas.
	sort.Slice(resp.SalesDetails, func(i, j int) bool {
		return resp.SalesDetails[i].FinishedGoodID < resp.SalesDetails[j].FinishedGoodID
	})
	return resp, nil
}
