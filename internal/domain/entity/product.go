package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (solo lectura para el motor de órdenes).
// La clasificación decide cómo se mueve el inventario al vender:
//   - HasRawMaterials: se descuenta vía BOM (producto terminado con receta).
//   - RequiresGRN:     se descuenta directo del stock del propio producto.
//   - ninguno:         sin movimiento de inventario (ej. servicios, hecho a pedido).
type Product struct {
	ProductID  string
	CompanyID  string
	PLUCode    string
	Name       string
	CategoryID string
	UomID      string
	MinQty     decimal.Decimal

	HasRawMaterials bool
	RequiresGRN     bool

	Active    bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
