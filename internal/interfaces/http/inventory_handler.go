package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido).
type InventoryHandler struct {
	grn     *inventory.ReceiveGRNUseCase
	queries *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(grn *inventory.ReceiveGRNUseCase, queries *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{grn: grn, queries: queries}
}

// ReceiveGRN godoc
// @Summary      Recepción de mercadería (GRN)
// @Description  Incrementa stock y recalcula el costo promedio ponderado del producto.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveGRNRequest  true  "supplierId, productId, quantity, unitCost"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/grn [post]
func (h *InventoryHandler) ReceiveGRN(c *fiber.Ctx) error {
	companyID, shopID, userID := GetCompanyID(c), GetShopID(c), GetUserID(c)
	if companyID == "" || shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiveGRNRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.grn.ReceiveGRN(c.Context(), companyID, shopID, userID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transactionCode": code})
}

// ListStock godoc
// @Summary      Stock actual de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockItemDTO
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	items, err := h.queries.ListStock(c.Context(), companyID, shopID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "stock": items})
}

// ListWastages godoc
// @Summary      Mermas registradas de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.WastageDTO
// @Router       /api/inventory/wastages [get]
func (h *InventoryHandler) ListWastages(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	items, err := h.queries.ListWastages(c.Context(), companyID, shopID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "wastages": items})
}
