package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/order"
	"github.com/jhoicas/Pos-api/internal/application/ports"
	"github.com/jhoicas/Pos-api/internal/application/report"
	"github.com/jhoicas/Pos-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/Pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pos-api/internal/interfaces/http"
	"github.com/jhoicas/Pos-api/pkg/config"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos atados al pool: lecturas fuera de transacción.
	productRepo := postgres.NewProductRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	paymentRepo := postgres.NewPaymentTransactionRepository(pool)
	fgRepo := postgres.NewFinishedGoodTransactionRepository(pool)
	rmtRepo := postgres.NewRawMaterialTransactionRepository(pool)
	wastageRepo := postgres.NewWastageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Eventos post-commit: Redis si está configurado, noop si no.
	var publisher ports.EventPublisher = events.NewNoopPublisher()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		publisher = events.NewRedisPublisher(rdb, cfg.Redis.Channel, log)
		log.Info().Str("addr", cfg.Redis.Addr).Str("channel", cfg.Redis.Channel).Msg("eventos vía Redis")
	}

	ledger := appinventory.NewLedger()
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	orderUC := order.New(
		txRunner, productRepo, bomRepo, paymentRepo, fgRepo,
		ledger, publisher, receipts, log,
	)
	receiveGRNUC := appinventory.NewReceiveGRNUseCase(txRunner, productRepo, publisher, log)
	inventoryQ := appinventory.NewQueryUseCase(stockRepo, wastageRepo)
	reportUC := report.New(fgRepo, rmtRepo, stockRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en /docs, solo si el spec generado (swag init) está presente:
	// el middleware lo lee al arrancar y sin el archivo tumbaría el proceso.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "POS API",
		}))
	} else {
		log.Warn().Str("file", swaggerSpec).Msg("spec swagger no encontrado, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:    orderUC,
		ReceiveGRN: receiveGRNUC,
		InventoryQ: inventoryQ,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
