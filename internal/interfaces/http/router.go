package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	appmovement "github.com/jhoicas/almacen-api/internal/application/movement"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	LocationUC *usecase.LocationUseCase
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	DocumentUC *appmovement.DocumentUseCase
	PDFUC      *appmovement.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// RBAC: admin administra catálogos; bodeguero opera documentos; consulta solo
// lee. Las transiciones de estado (accept/decline) quedan fuera del rol
// consulta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleConsulta)
	operators := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Locations (catálogo; escribir es solo admin)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Put("/:id", adminOnly, locationHandler.Update)
	locations.Get("/", anyRole, locationHandler.List)
	locations.Get("/:id", anyRole, locationHandler.GetByID)

	// Products (catálogo; escribir es solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)

	// Documents (operación de almacén)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.PDFUC)
	documents.Post("/", operators, documentHandler.Create)
	documents.Get("/", anyRole, documentHandler.List)
	documents.Get("/:id", anyRole, documentHandler.GetByID)
	documents.Post("/:id/positions", operators, documentHandler.AddPosition)
	documents.Put("/:id/positions/:posId", operators, documentHandler.UpdatePosition)
	documents.Post("/:id/accept", operators, documentHandler.Accept)
	documents.Post("/:id/decline", operators, documentHandler.Decline)
	documents.Get("/:id/pdf", anyRole, documentHandler.PDF)

	// Stock (consulta de disponibilidad)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", anyRole, stockHandler.Available)
}
