package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC    *order.UseCase
	ReceiveGRN *inventory.ReceiveGRNUseCase
	InventoryQ *inventory.QueryUseCase
	ReportUC   *report.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo el POS es protegido: el token
// aporta empresa, tienda y usuario.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:transactionCode", orderHandler.Get)
	orders.Get("/:transactionCode/receipt", orderHandler.Receipt)
	orders.Post("/:transactionCode/cancel", orderHandler.Cancel)
	orders.Post("/:transactionCode/returns", orderHandler.Return)

	// Inventory (protegido; la recepción GRN no es para cajeros)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ReceiveGRN, deps.InventoryQ)
	invGroup.Post("/grn", RequireRole("admin", "manager"), inventoryHandler.ReceiveGRN)
	invGroup.Get("/stock", inventoryHandler.ListStock)
	invGroup.Get("/wastages", inventoryHandler.ListWastages)

	// Reports (protegido, solo admin/manager)
	reports := protected.Group("/reports", RequireRole("admin", "manager"))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/inventory-movement", reportHandler.InventoryMovement)
}
