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
	_ "github.com/tu-usuario/hostal-pro/docs"
	"github.com/tu-usuario/hostal-pro/internal/application/auth"
	"github.com/tu-usuario/hostal-pro/internal/application/billing"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/hostal-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/hostal-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/hostal-pro/internal/infrastructure/xmlexport"
	httpRouter "github.com/tu-usuario/hostal-pro/internal/interfaces/http"
	"github.com/tu-usuario/hostal-pro/pkg/config"
	"github.com/tu-usuario/hostal-pro/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	houseRepo := postgres.NewHouseRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	storageRepo := postgres.NewStorageRepository(pool)
	roomEquipRepo := postgres.NewRoomEquipmentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	houseUC := usecase.NewHouseUseCase(houseRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo, houseRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	contractUC := usecase.NewContractUseCase(contractRepo, roomRepo, tenantRepo, txRunner)
	inventoryUC := usecase.NewInventoryUseCase(equipmentRepo, storageRepo, roomEquipRepo, houseRepo, roomRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	// Facturación: generación, documentos PDF y exportación XML
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, contractRepo, tenantRepo, notificationUC, log)
	documentUC := billing.NewDocumentUseCase(
		invoiceRepo, contractRepo, tenantRepo, roomRepo,
		infrapdf.NewMarotoInvoiceGenerator(),
		xmlexport.NewInvoiceXMLExporter(),
	)

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
		Title:    "Hostal Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		HouseUC:        houseUC,
		RoomUC:         roomUC,
		TenantUC:       tenantUC,
		ContractUC:     contractUC,
		InventoryUC:    inventoryUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		InvoiceUC:      invoiceUC,
		DocumentUC:     documentUC,
		JWTSecret:      cfg.JWT.Secret,
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
