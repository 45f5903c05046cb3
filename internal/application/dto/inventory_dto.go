package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveGRNRequest body para POST /api/inventory/grn (recepción de
// mercadería del proveedor). Cantidad y costo se validan en el caso de uso.
type ReceiveGRNRequest struct {
	SupplierID string          `json:"supplierId" validate:"required"`
	ProductID  string          `json:"productId" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	Remarks    string          `json:"remarks"`
}

// StockItemDTO stock actual de un producto en la tienda.
type StockItemDTO struct {
	ProductID           string          `json:"productId"`
	TotalQuantity       decimal.Decimal `json:"totalQuantity"`
	WeightedAverageCost decimal.Decimal `json:"weightedAverageCost"`
	MinimumQuantity     decimal.Decimal `json:"minimumQuantity"`
	NeedsRestock        bool            `json:"needsRestock"`
}

// WastageDTO merma registrada.
type WastageDTO struct {
	WastageID string          `json:"wastageId"`
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UomID     string          `json:"uomId"`
	Reason    string          `json:"reason"`
	Condition string          `json:"condition"`
	Date      time.Time       `json:"date"`
}
