package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/report"
	"github.com/jhoicas/Pos-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange lee startDate y endDate (YYYY-MM-DD). endDate es inclusivo:
// se extiende al final del día para que las ventas de esa fecha cuenten.
func parseRange(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

// Sales godoc
// @Summary      Reporte de ventas y utilidad del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD"
// @Param        endDate    query  string  true  "YYYY-MM-DD (inclusivo)"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate y endDate requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.SalesReport(c.Context(), companyID, shopID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// InventoryMovement godoc
// @Summary      Reporte de movimiento de inventario del período
// @Description  Inventario inicial, compras, ventas directas e indirectas e inventario final por producto.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD"
// @Param        endDate    query  string  true  "YYYY-MM-DD (inclusivo)"
// @Success      200  {object}  dto.MovementReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory-movement [get]
func (h *ReportHandler) InventoryMovement(c *fiber.Ctx) error {
	companyID, shopID := GetCompanyID(c), GetShopID(c)
	if companyID == "" || shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "startDate y endDate requeridos (YYYY-MM-DD)"})
	}
	resp, err := h.uc.InventoryMovement(c.Context(), companyID, shopID, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la tienda no tiene inventario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
