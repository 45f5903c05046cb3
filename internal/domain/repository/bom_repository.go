package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// BOMRepository puerto de lectura de listas de materiales.
// GetByFinishedGoodID devuelve (nil, nil) si no existe; el resolver de la
// capa de aplicación convierte ausencia y BOM vacía en ErrBOMNotFound.
type BOMRepository interface {
	GetByFinishedGoodID(companyID, finishedGoodID string) (*entity.BillOfMaterials, error)
	ListByCompany(companyID string) ([]*entity.BillOfMaterials, error)
}
