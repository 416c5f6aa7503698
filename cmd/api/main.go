package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fotostudio/gestion-api/internal/application/auth"
	"github.com/fotostudio/gestion-api/internal/application/inventory"
	"github.com/fotostudio/gestion-api/internal/application/production"
	"github.com/fotostudio/gestion-api/internal/application/usecase"
	"github.com/fotostudio/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/fotostudio/gestion-api/internal/interfaces/http"
	"github.com/fotostudio/gestion-api/pkg/config"
	"github.com/fotostudio/gestion-api/pkg/logger"
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

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	configurationRepo := postgres.NewConfigurationRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	prodOrderRepo := postgres.NewProductionOrderRepository(pool)
	prodLineRepo := postgres.NewProductionLineRepository(pool)
	goodRepo := postgres.NewFinishedGoodRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	invTxRunner := postgres.NewTxRunner(pool)
	prodTxRunner := postgres.NewProductionTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo)
	agendaUC := usecase.NewAgendaUseCase(appointmentRepo)
	contractUC := usecase.NewContractUseCase(contractRepo, clientRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	configurationUC := usecase.NewConfigurationUseCase(configurationRepo)
	itemUC := usecase.NewItemUseCase(stockRepo, movementRepo)

	adjustStockUC := inventory.NewAdjustStockUseCase(invTxRunner, notificationRepo, log)
	invReportsUC := inventory.NewReportsUseCase(reportRepo, movementRepo)
	prodOrdersUC := production.NewOrdersUseCase(prodTxRunner, prodOrderRepo, prodLineRepo, stockRepo, goodRepo, log)
	registerUsageUC := production.NewRegisterUsageUseCase(prodTxRunner, notificationRepo, log)
	prodReportsUC := production.NewReportsUseCase(reportRepo, prodOrderRepo, prodLineRepo)
	dashboardUC := usecase.NewDashboardUseCase(reportRepo, invReportsUC, prodReportsUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		TenantUC:        tenantUC,
		UserUC:          userUC,
		ClientUC:        clientUC,
		OrderUC:         orderUC,
		AgendaUC:        agendaUC,
		ContractUC:      contractUC,
		NotificationUC:  notificationUC,
		ConfigurationUC: configurationUC,
		DashboardUC:     dashboardUC,
		ItemUC:          itemUC,
		AdjustStock:     adjustStockUC,
		InvReports:      invReportsUC,
		ProdOrders:      prodOrdersUC,
		RegisterUsage:   registerUsageUC,
		ProdReports:     prodReportsUC,
		JWTSecret:       cfg.JWT.Secret,
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
