package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// ProductRepository puerto de solo lectura sobre el catálogo. El catálogo lo
// administra otro subsistema; el motor de órdenes solo consulta.
type ProductRepository interface {
	GetByProductID(companyID, productID string) (*entity.Product, error)
	ListByCompany(companyID string) ([]*entity.Product, error)
}
