package http

import (
	"github.com/fotostudio/gestion-api/internal/application/auth"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/fotostudio/gestion-api/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	TenantUC        *usecase.TenantUseCase
	UserUC          *usecase.UserUseCase
	ClientUC        *usecase.ClientUseCase
	OrderUC         *usecase.OrderUseCase
	AgendaUC        *usecase.AgendaUseCase
	ContractUC      *usecase.ContractUseCase
	NotificationUC  *usecase.NotificationUseCase
	ConfigurationUC *usecase.ConfigurationUseCase
	DashboardUC     *usecase.DashboardUseCase
	ItemUC          *usecase.ItemUseCase
	AdjustStock     *inventory.AdjustStockUseCase
	InvReports      *inventory.ReportsUseCase
	ProdOrders      *production.OrdersUseCase
	RegisterUsage   *production.RegisterUsageUseCase
	ProdReports     *production.ReportsUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tenants (alta pública; administración protegida)
	tenants := api.Group("/tenants")
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), tenantHandler.List)
	tenants.Get("/:id", AuthMiddleware(deps.JWTSecret), tenantHandler.GetByID)
	tenants.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), tenantHandler.Update)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", adminOnly, userHandler.GetByID)
	users.Put("/:id/role", adminOnly, userHandler.UpdateRole)
	users.Put("/:id/status", adminOnly, userHandler.UpdateStatus)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	// Inventory: catálogo, movimientos y reportes (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.AdjustStock, deps.InvReports)
	inv.Post("/items", inventoryHandler.CreateItem)
	inv.Get("/items", inventoryHandler.ListItems)
	inv.Get("/items/:id", inventoryHandler.GetItem)
	inv.Put("/items/:id", inventoryHandler.UpdateItem)
	inv.Delete("/items/:id", adminOnly, inventoryHandler.DeleteItem)
	inv.Post("/adjust-stock", inventoryHandler.AdjustStock)
	inv.Post("/entries", inventoryHandler.RegisterEntries)
	inv.Post("/exits", inventoryHandler.RegisterExits)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/reports/low-stock", inventoryHandler.LowStockReport)
	inv.Get("/reports/stock-value", inventoryHandler.StockValueReport)
	inv.Get("/reports/expiry", inventoryHandler.ExpiryReport)

	// Production: órdenes, consumo, cuadros y reportes (protegido)
	prod := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProdOrders, deps.RegisterUsage, deps.ProdReports)
	prod.Post("/orders", RequireRole(entity.RoleAdmin, entity.RoleProduccion), productionHandler.CreateOrder)
	prod.Get("/orders", productionHandler.ListOrders)
	prod.Get("/orders/:id", productionHandler.GetOrder)
	prod.Post("/orders/:id/materials", RequireRole(entity.RoleAdmin, entity.RoleProduccion), productionHandler.AddMaterial)
	prod.Post("/orders/:id/status", RequireRole(entity.RoleAdmin, entity.RoleProduccion), productionHandler.UpdateStatus)
	prod.Get("/orders/:id/efficiency", productionHandler.OrderEfficiency)
	prod.Post("/register", RequireRole(entity.RoleAdmin, entity.RoleProduccion), productionHandler.RegisterUsage)
	prod.Post("/cuadros", RequireRole(entity.RoleAdmin, entity.RoleProduccion), productionHandler.CreateFinishedGood)
	prod.Get("/cuadros", productionHandler.ListFinishedGoods)
	prod.Put("/cuadros/:id", productionHandler.UpdateFinishedGood)
	prod.Get("/reports/summary", productionHandler.Summary)
	prod.Get("/reports/waste", productionHandler.WasteAnalysis)
	prod.Get("/reports/consumption", productionHandler.Consumption)

	// Orders: pedidos de cliente (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)

	// Agenda (protegido)
	agenda := protected.Group("/agenda")
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	agenda.Post("/", agendaHandler.Create)
	agenda.Get("/", agendaHandler.List)
	agenda.Get("/:id", agendaHandler.GetByID)
	agenda.Put("/:id", agendaHandler.Update)
	agenda.Delete("/:id", agendaHandler.Delete)

	// Contracts (protegido)
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", adminOnly, notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Configurations (protegido, solo admin escribe)
	configs := protected.Group("/configurations")
	configurationHandler := NewConfigurationHandler(deps.ConfigurationUC)
	configs.Put("/", adminOnly, configurationHandler.Upsert)
	configs.Get("/", configurationHandler.List)
	configs.Get("/:type/:key", configurationHandler.Get)
	configs.Delete("/:type/:key", adminOnly, configurationHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
