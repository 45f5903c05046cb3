package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesDetailDTO agregado de ventas por producto terminado.
type SalesDetailDTO struct {
	FinishedGoodID  string          `json:"finishedGoodId"`
	FinishedGoodQty decimal.Decimal `json:"finishedgoodQty"`
	Sale            decimal.Decimal `json:"sale"`
	Cost            decimal.Decimal `json:"cost"`
	Profit          decimal.Decimal `json:"profit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// SalesReportResponse reporte de ventas y utilidad del período.
// TotalCost = costo de producto + descuentos (fórmula original conservada).
type SalesReportResponse struct {
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	TotalSales       decimal.Decimal  `json:"totalSales"`
	TotalProductCost decimal.Decimal  `json:"totalProductCost"`
	TotalCost        decimal.Decimal  `json:"totalCost"`
	TotalProfit      decimal.Decimal  `json:"totalProfit"`
	TotalDiscounts   decimal.Decimal  `json:"totalDiscounts"`
	SalesDetails     []SalesDetailDTO `json:"salesDetails"`
}

// MovementRowDTO movimiento de inventario de un producto en el período.
// IndirectSales = cantidad consumida como materia prima dentro de la venta
// de otro producto (vía usedProductDetails).
type MovementRowDTO struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	PLUCode            string          `json:"pluCode"`
	CategoryID         string          `json:"categoryId"`
	BeginningInventory decimal.Decimal `json:"beginningInventory"`
	Purchases          decimal.Decimal `json:"purchases"`
	DirectSales        decimal.Decimal `json:"directSales"`
	IndirectSales      decimal.Decimal `json:"indirectSales"`
	TotalSales         decimal.Decimal `json:"totalSales"`
	EndingInventory    decimal.Decimal `json:"endingInventory"`
	CurrentInventory   decimal.Decimal `json:"currentInventory"`
	MinimumQuantity    decimal.Decimal `json:"minimumQuantity"`
	NeedsRestock       bool            `json:"needsRestock"`
}

// MovementReportResponse reporte de movimiento de inventario del período,
// ordenado por ventas totales descendente.
type MovementReportResponse struct {
	StartDate  time.Time        `json:"startDate"`
	EndDate    time.Time        `json:"endDate"`
	ReportData []MovementRowDTO `json:"reportData"`
}
