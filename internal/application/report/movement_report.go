package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// buckets acumuladores por producto: compras y ventas (directas e
// indirectas) antes del período y dentro de él.
type buckets struct {
	beforePurchases     decimal.Decimal
	beforeDirectSales   decimal.Decimal
	beforeIndirectSales decimal.Decimal
	periodPurchases     decimal.Decimal
	periodDirectSales   decimal.Decimal
	periodIndirectSales decimal.Decimal
}

// InventoryMovement reporte de movimiento de inventario del período.
//
// Por producto con stock en la tienda:
//
//	beginning = max(0, comprasAntes - ventasDirectasAntes - ventasIndirectasAntes)
//	ending    = max(0, beginning + compras - ventasDirectas - ventasIndirectas)
//
// "Ventas indirectas" = cantidad consumida como materia prima dentro del
// usedProductDetails de otra línea. El clamp a cero es política heredada:
// oculta inconsistencias de datos con inventario negativo en vez de
// exponerlas.
func (uc *UseCase) InventoryMovement(ctx context.Context, companyID, shopID string, start, end time.Time) (*dto.MovementReportResponse, error) {
	stocks, err := uc.stockRepo.ListByShop(companyID, shopID)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, domain.ErrInventoryNotFound
	}

	products, err := uc.productRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	productMap := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productMap[p.ProductID] = p
	}

	rawMaterialTxs, err := uc.rmtRepo.ListNotCancelledUntil(companyID, shopID, end)
	if err != nil {
		return nil, err
	}
	finishedTxs, err := uc.fgRepo.ListNotCancelledUntil(companyID, shopID, end)
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]*buckets, len(stocks))
	for _, s := range stocks {
		tracked[s.ProductID] = &buckets{}
	}

	// Compras: entradas GRN de materia prima.
	for _, t := range rawMaterialTxs {
		b, ok := tracked[t.ProductID]
		if !ok || t.TransactionType != entity.TransactionTypeGRN || t.RawMatInOut != entity.InOutIn {
			continue
		}
		if inPeriod(t.TransactionDateTime, start, end) {
			b.periodPurchases = b.periodPurchases.Add(t.Quantity)
		} else if t.TransactionDateTime.Before(start) {
			b.beforePurchases = b.beforePurchases.Add(t.Quantity)
		}
	}

	for _, t := range finishedTxs {
		isSale := t.TransactionType == entity.TransactionTypeSales &&
			t.TransactionInOut == entity.InOutOut &&
			t.TransactionStatus == entity.StatusCompleted
		if !isSale {
			continue
		}

		// Venta directa: el producto con stock se vendió él mismo.
		if b, ok := tracked[t.FinishedGoodID]; ok {
			if inPeriod(t.TransactionDateTime, start, end) {
				b.periodDirectSales = b.periodDirectSales.Add(t.FinishedGoodQty)
			} else if t.TransactionDateTime.Before(start) {
				b.beforeDirectSales = b.beforeDirectSales.Add(t.FinishedGoodQty)
			}
		}

		// Venta indirecta: consumido como materia prima de otro producto.
		for _, used := range t.UsedProductDetails {
			b, ok := tracked[used.ProductID]
			if !ok {
				continue
			}
			if inPeriod(t.TransactionDateTime, start, end) {
				b.periodIndirectSales = b.periodIndirectSales.Add(used.Quantity)
			} else if t.TransactionDateTime.Before(start) {
				b.beforeIndirectSales = b.beforeIndirectSales.Add(used.Quantity)
			}
		}
	}

	resp := &dto.MovementReportResponse{StartDate: start, EndDate: end}
	for _, s := range stocks {
		product, ok := productMap[s.ProductID]
		if !ok {
			continue
		}
		b := tracked[s.ProductID]

		beginning := clampZero(b.beforePurchases.Sub(b.beforeDirectSales).Sub(b.beforeIndirectSales))
		ending := clampZero(beginning.Add(b.periodPurchases).Sub(b.periodDirectSales).Sub(b.periodIndirectSales))

		resp.ReportData = append(resp.ReportData, dto.MovementRowDTO{
			ProductID:          s.ProductID,
			ProductName:        product.Name,
			PLUCode:            product.PLUCode,
			CategoryID:         product.CategoryID,
			BeginningInventory: beginning,
			Purchases:          b.periodPurchases,
			DirectSales:        b.periodDirectSales,
			IndirectSales:      b.periodIndirectSales,
			TotalSales:         b.periodDirectSales.Add(b.periodIndirectSales),
			EndingInventory:    ending,
			CurrentInventory:   s.TotalQuantity,
			MinimumQuantity:    s.MinimumQuantity,
			NeedsRestock:       s.NeedsRestock(),
		})
	}

	// Mayores ventas primero.
	sort.SliceStable(resp.ReportData, func(i, j int) bool {
		return resp.ReportData[i].TotalSales.GreaterThan(resp.ReportData[j].TotalSales)
	})
	return resp, nil
}

func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
