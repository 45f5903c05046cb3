package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrBOMNotFound         = errors.New("lista de materiales no encontrada o vacía")
	ErrInventoryNotFound   = errors.New("inventario no encontrado para el producto")
	ErrTransactionNotFound = errors.New("transacción no encontrada")
	ErrInsufficientStock   = errors.New("inventario insuficiente")
	ErrInvalidQuantity     = errors.New("la cantidad a devolver excede la cantidad original")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflicto con el estado actual de la orden")
)
