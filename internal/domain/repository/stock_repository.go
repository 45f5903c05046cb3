package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// StockRepository puerto para consultar/actualizar stock por tienda+producto.
// Usado dentro de transacciones para garantizar consistencia.
// La fila nunca se auto-crea en débitos/créditos: ausencia es
// ErrInventoryNotFound. Upsert existe solo para la recepción GRN, que sí
// puede dar de alta el stock de un producto nuevo.
type StockRepository interface {
	Get(companyID, shopID, productID string) (*entity.InventoryStock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// débitos/créditos concurrentes sobre el mismo producto.
	GetForUpdate(companyID, shopID, productID string) (*entity.InventoryStock, error)
	Update(stock *entity.InventoryStock) error
	Upsert(stock *entity.InventoryStock) error
	ListByShop(companyID, shopID string) ([]*entity.InventoryStock, error)
}
