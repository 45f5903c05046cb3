package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP del ciclo de vida de órdenes (protegido).
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// mapOrderError traduce errores de dominio a respuestas HTTP.
func mapOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrBOMNotFound),
		errors.Is(err, domain.ErrInventoryNotFound), errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear una orden de venta
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "items, montos de pago"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	companyID, shopID, userID := GetCompanyID(c), GetShopID(c), GetUserID(c)
	if companyID == "" || shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.uc.CreateOrder(c.Context(), companyID, shopID, userID, in)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transactionCode": code})
}

// Cancel godoc
// @Summary      Cancelar una orden completa
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        transactionCode  path  string  true  "Código de la orden (SalesID-n)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{transactionCode}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	companyID, shopID, userID := GetCompanyID(c), GetShopID(c), GetUserID(c)
	if companyID == "" || shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	code := c.Params("transactionCode")
	if err := h.uc.CancelOrder(c.Context(), companyID, shopID, userID, code); err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden cancelada", "transactionCode": code})
}

// Return godoc
// @Summary      Devolución parcial o total de ítems de una orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        transactionCode  path  string  true  "Código de la orden (SalesID-n)"
// @Param        body  body  dto.ReturnOrderRequest  true  "itemsToReturn: producto, cantidad, condición"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{transactionCode}/returns [post]
func (h *OrderHandler) Return(c *fiber.Ctx) error {
	companyID, shopID, userID := GetCompanyID(c), GetShopID(c), GetUserID(c)
	if companyID == "" || shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	code := c.Params("transactionCode")
	var in dto.ReturnOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ReturnOrderItems(c.Context(), companyID, shopID, userID, code, in); err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "devolución registrada", "transactionCode": code})
}

// Get godoc
// @Summary      Detalle de una orden con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        transactionCode  path  string  true  "Código de la orden (SalesID-n)"
// @Success      200  {object}  dto.OrderDetails
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{transactionCode} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	details, err := h.uc.GetOrder(c.Context(), companyID, shopID, c.Params("transactionCode"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(details)
}

// List godoc
// @Summary      Listado paginado de órdenes de la tienda
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.OrderSummary
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	orders, err := h.uc.ListOrders(c.Context(), companyID, shopID, page)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(orders), "orders": orders})
}

// Receipt godoc
// @Summary      Comprobante PDF de una orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        transactionCode  path  string  true  "Código de la orden (SalesID-n)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{transactionCode}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.uc.ReceiptPDF(c.Context(), companyID, shopID, c.Params("transactionCode"))
	if err != nil {
		return mapOrderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
