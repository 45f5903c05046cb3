package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStock stock de un producto en una tienda, identificado por la
// tripleta (companyId, shopId, productId). TotalQuantity nunca puede quedar
// negativa tras una operación exitosa; un débito que la dejaría bajo cero
// aborta la operación completa. La fila no se auto-crea: su ausencia es error.
type InventoryStock struct {
	CompanyID           string          `json:"companyId"`
	ShopID              string          `json:"shopId"`
	ProductID           string          `json:"productId"`
	TotalQuantity       decimal.Decimal `json:"totalQuantity"`
	WeightedAverageCost decimal.Decimal `json:"weightedAverageCost"`
	MinimumQuantity     decimal.Decimal `json:"minimumQuantity"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// NeedsRestock indica si el stock está bajo el mínimo configurado.
func (s *InventoryStock) NeedsRestock() bool {
	return s.TotalQuantity.LessThan(s.MinimumQuantity)
}
