package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/auth"
	"github.com/tu-usuario/hostal-pro/internal/application/billing"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	HouseUC        *usecase.HouseUseCase
	RoomUC         *usecase.RoomUseCase
	TenantUC       *usecase.TenantUseCase
	ContractUC     *usecase.ContractUseCase
	InventoryUC    *usecase.InventoryUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *usecase.DashboardUseCase
	InvoiceUC      *billing.InvoiceUseCase
	DocumentUC     *billing.DocumentUseCase
	JWTSecret      string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole("admin")
	staff := RequireRole("admin", "manager")
	anyRole := RequireRole("admin", "manager", "tenant")

	// Houses: lectura para staff, escritura solo admin
	houses := protected.Group("/houses")
	houseHandler := NewHouseHandler(deps.HouseUC)
	houses.Get("/", staff, houseHandler.List)
	houses.Get("/:id", staff, houseHandler.GetByID)
	houses.Post("/", adminOnly, houseHandler.Create)
	houses.Put("/:id", adminOnly, houseHandler.Update)
	houses.Delete("/:id", adminOnly, houseHandler.Delete)

	// Rooms (staff)
	rooms := protected.Group("/rooms", staff)
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.ListByHouse)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Tenants (staff)
	tenants := protected.Group("/tenants", staff)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Contracts: lectura para cualquier rol (el tenant consulta los suyos),
	// apertura y cierre solo staff
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/", anyRole, contractHandler.List)
	contracts.Get("/:id", anyRole, contractHandler.GetByID)
	contracts.Post("/", staff, contractHandler.Open)
	contracts.Put("/:id/finish", staff, contractHandler.Finish)

	// Invoices: lectura y descarga para cualquier rol, cambios de estado solo staff
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Get("/", anyRole, invoiceHandler.List)
	invoices.Get("/:id", anyRole, invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", anyRole, invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", anyRole, invoiceHandler.ExportXML)
	invoices.Post("/", staff, invoiceHandler.Generate)
	invoices.Put("/:id/pay", staff, invoiceHandler.MarkPaid)
	invoices.Put("/:id/cancel", staff, invoiceHandler.Cancel)

	// Inventario: catálogo, bodega y asignaciones (staff)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	equipments := protected.Group("/equipments", staff)
	equipments.Post("/", inventoryHandler.CreateEquipment)
	equipments.Get("/", inventoryHandler.ListEquipment)

	storages := protected.Group("/storages", staff)
	storages.Post("/", inventoryHandler.CreateStorage)
	storages.Get("/", inventoryHandler.ListStorage)
	storages.Put("/:id", inventoryHandler.UpdateStorage)

	roomEquipments := protected.Group("/room-equipments", staff)
	roomEquipments.Post("/", inventoryHandler.CreateRoomEquipment)
	roomEquipments.Get("/", inventoryHandler.ListRoomEquipment)
	roomEquipments.Get("/:id", inventoryHandler.GetRoomEquipment)
	roomEquipments.Put("/:id", inventoryHandler.UpdateRoomEquipment)
	roomEquipments.Delete("/:id", inventoryHandler.DeleteRoomEquipment)

	// Notificaciones del usuario autenticado (cualquier rol)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.Feed)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Dashboard (staff)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", staff, dashboardHandler.Get)
}
