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

	"github.com/lilis-erp/gestion-api/internal/application/auth"
	"github.com/lilis-erp/gestion-api/internal/application/inventory"
	"github.com/lilis-erp/gestion-api/internal/application/usecase"
	"github.com/lilis-erp/gestion-api/internal/infrastructure/mail"
	"github.com/lilis-erp/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/lilis-erp/gestion-api/internal/interfaces/http"
	"github.com/lilis-erp/gestion-api/pkg/config"
	"github.com/lilis-erp/gestion-api/pkg/logger"
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

	accountRepo := postgres.NewAccountRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewLogMailer(log.Zerolog())
	authUC := auth.NewAuthUseCase(accountRepo, mailer, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		ResetExpMinutes: cfg.JWT.ResetExpiration,
		Issuer:          cfg.JWT.Issuer,
	})

	accountUC := usecase.NewAccountUseCase(accountRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, productRepo)
	shiftUC := usecase.NewShiftUseCase(shiftRepo, accountRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, supplierRepo, warehouseRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(productRepo, movementRepo)
	lowStockUC := inventory.NewLowStockReportUseCase(productRepo, movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		AccountUC:        accountUC,
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		WarehouseUC:      warehouseUC,
		CustomerUC:       customerUC,
		OrderUC:          orderUC,
		ShiftUC:          shiftUC,
		RegisterMovement: registerMovementUC,
		StockQuery:       stockQueryUC,
		LowStockReport:   lowStockUC,
		JWTSecret:        cfg.JWT.Secret,
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
