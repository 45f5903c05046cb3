package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxBOMItems límite de entradas por lista de materiales.
const MaxBOMItems = 100

// BOMItem una materia prima de la receta: cantidad necesaria por unidad
// de producto terminado y costo promedio vigente al momento de editarla.
type BOMItem struct {
	ProductID  string          `json:"productId"`
	Qty        decimal.Decimal `json:"qty"`
	CurrentWAC decimal.Decimal `json:"currentWAC"`
}

// BillOfMaterials receta de un producto terminado. Una sola BOM por
// finished good (índice único en finished_good_id). El motor de órdenes
// la lee; la crea/actualiza el back-office.
type BillOfMaterials struct {
	BomID          string
	CompanyID      string
	FinishedGoodID string
	Items          []BOMItem
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEmpty indica si la BOM no tiene entradas. Una BOM vacía se trata igual
// que una inexistente: la venta falla (política de no vender a costo cero).
func (b *BillOfMaterials) IsEmpty() bool {
	return b == nil || len(b.Items) == 0
}
