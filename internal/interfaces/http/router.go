package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	LocationUC   *usecase.LocationUseCase
	ProductUC    *usecase.ProductUseCase
	DashboardUC  *usecase.DashboardUseCase
	MoveUC       *inventory.MoveUseCase
	TransitionUC *inventory.TransitionUseCase
	ReconcileUC  *inventory.ReconcileUseCase
	StockUC      *inventory.StockUseCase
	SlipGen      DeliverySlipGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Warehouses y locations
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Delete("/:id", locationHandler.Delete)

	// Products (con stock derivado)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Receipts y deliveries: mismo handler con el tipo fijado
	receiptHandler := NewMoveHandler(entity.MoveTypeRECEIPT, deps.MoveUC, deps.TransitionUC, deps.ReconcileUC)
	deliveryHandler := NewMoveHandler(entity.MoveTypeDELIVERY, deps.MoveUC, deps.TransitionUC, deps.ReconcileUC)

	receipts := protected.Group("/receipts")
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id", receiptHandler.Edit)
	receipts.Post("/:id/status", receiptHandler.TransitionStatus)

	deliveries := protected.Group("/deliveries")
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Post("/reconcile", deliveryHandler.Reconcile)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Put("/:id", deliveryHandler.Edit)
	deliveries.Post("/:id/status", deliveryHandler.TransitionStatus)

	// Albarán PDF
	pdfHandler := NewDeliveryPDFHandler(deps.MoveUC, deps.SlipGen)
	deliveries.Get("/:id/pdf", pdfHandler.GetPDF)

	// Stock derivado y ajustes
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.MoveUC, deps.ReconcileUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/adjust", stockHandler.Adjust)
	stock.Get("/:productId", stockHandler.GetByProduct)

	// Historial y dashboard
	historyHandler := NewHistoryHandler(deps.MoveUC)
	protected.Get("/history", historyHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetStats)
}
