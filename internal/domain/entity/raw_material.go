package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterialTransaction entrada o salida de materia prima (GRN al recibir
// mercadería del proveedor). Alimenta el bucket de compras del reporte de
// movimiento de inventario.
type RawMaterialTransaction struct {
	ID                  string
	RmtID               string
	CompanyID           string
	ShopID              string
	SupplierID          string
	ProductID           string
	TransactionDateTime time.Time
	TransactionType     string // GRN, GIN
	TransactionCode     string
	RawMatInOut         string // In / Out
	UnitCost            decimal.Decimal
	Quantity            decimal.Decimal
	TotalCost           decimal.Decimal // UnitCost * Quantity
	Remarks             string
	TransactionStatus   string
	CreatedBy           string
	CreatedAt           time.Time
}
