package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lilis-erp/gestion-api/internal/application/auth"
	"github.com/lilis-erp/gestion-api/internal/application/inventory"
	"github.com/lilis-erp/gestion-api/internal/application/usecase"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	AccountUC        *usecase.AccountUseCase
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	CustomerUC       *usecase.CustomerUseCase
	OrderUC          *usecase.OrderUseCase
	ShiftUC          *usecase.ShiftUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	StockQuery       *inventory.StockQueryUseCase
	LowStockReport   *inventory.LowStockReportUseCase
	JWTSecret        string
}

// Conjuntos de cargos por panel. Pertenencia por enumeración explícita:
// un OPERADOR no entra al panel de supervisión aunque "esté debajo".
var (
	adminOnly      = []string{entity.RoleAdmin}
	supervisorRead = []string{entity.RoleSupervisor, entity.RoleAdmin}
	operadorRead   = []string{entity.RoleOperador, entity.RoleSupervisor, entity.RoleAdmin}
	clienteRead    = []string{entity.RoleCliente, entity.RoleAdmin}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboards por cargo
	dashboards := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.LowStockReport)
	dashboards.Get("/", dashboardHandler.Landing)
	dashboards.Get("/admin", RequireRole(adminOnly...), dashboardHandler.Admin)
	dashboards.Get("/supervisor", RequireRole(supervisorRead...), dashboardHandler.Supervisor)
	dashboards.Get("/operador", RequireRole(operadorRead...), dashboardHandler.Operador)
	dashboards.Get("/cliente", RequireRole(clienteRead...), dashboardHandler.Cliente)

	// Accounts (solo ADMIN)
	accounts := protected.Group("/accounts", RequireRole(adminOnly...))
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Categories (personal interno)
	categories := protected.Group("/categories", RequireRole(operadorRead...))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (personal interno)
	products := protected.Group("/products", RequireRole(operadorRead...))
	productHandler := NewProductHandler(deps.ProductUC, deps.StockQuery)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.GetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers (supervisión)
	suppliers := protected.Group("/suppliers", RequireRole(supervisorRead...))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Warehouses (personal interno)
	warehouses := protected.Group("/warehouses", RequireRole(operadorRead...))
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Customers (personal interno)
	customers := protected.Group("/customers", RequireRole(operadorRead...))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	// Orders (personal interno; los clientes consultan vía su panel)
	orders := protected.Group("/orders", RequireRole(operadorRead...))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Shifts (supervisión)
	shifts := protected.Group("/shifts", RequireRole(supervisorRead...))
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/", shiftHandler.Create)
	shifts.Get("/", shiftHandler.List)
	shifts.Get("/:id", shiftHandler.GetByID)
	shifts.Delete("/:id", shiftHandler.Delete)

	// Inventory movements (personal interno)
	invGroup := protected.Group("/inventory", RequireRole(operadorRead...))
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.StockQuery)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
}
