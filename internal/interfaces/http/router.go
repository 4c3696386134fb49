package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/geo"
	apppipeline "github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ContactUC  *usecase.ContactUseCase
	DealUC     *usecase.DealUseCase
	ActivityUC *usecase.ActivityUseCase
	MoveUC     *apppipeline.MoveUseCase
	AuthUC     *auth.AuthUseCase
	GeoCache   *geo.Cache
	Refresher  *geo.Refresher
	// BaseCtx contexto de vida de la aplicación (para tareas de fondo
	// disparadas por peticiones).
	BaseCtx   context.Context
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos (público: son constantes de presentación)
	catalogs := api.Group("/catalogos")
	catalogHandler := NewCatalogHandler()
	catalogs.Get("/fases", catalogHandler.Phases)
	catalogs.Get("/estados", catalogHandler.CompanyStatuses)
	catalogs.Get("/puestos", catalogHandler.ContactRoles)
	catalogs.Get("/regimenes", catalogHandler.TaxRegimes)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas y sus contactos (protegido)
	companies := protected.Group("/empresas")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	contactHandler := NewContactHandler(deps.ContactUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", RequireRole(entity.RoleAdmin), companyHandler.Delete)
	companies.Get("/:id/contactos", contactHandler.ListByCompany)
	companies.Post("/:id/contactos", contactHandler.Create)

	// Contactos sueltos (protegido)
	contacts := protected.Group("/contactos")
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Tratos, tablero y flujo ganado (protegido)
	deals := protected.Group("/tratos")
	dealHandler := NewDealHandler(deps.DealUC, deps.MoveUC)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Get("/tablero", dealHandler.Board)
	deals.Get("/:id", dealHandler.GetByID)
	deals.Put("/:id", dealHandler.Update)
	deals.Delete("/:id", RequireRole(entity.RoleAdmin), dealHandler.Delete)
	deals.Post("/:id/mover", dealHandler.Move)
	deals.Post("/:id/ganar/confirmar", dealHandler.ConfirmWon)
	deals.Post("/:id/ganar/cancelar", dealHandler.CancelWon)
	deals.Get("/:id/actividades", activityHandler.ListByDeal)
	deals.Post("/:id/actividades", activityHandler.Create)

	// Actividades sueltas (protegido)
	activities := protected.Group("/actividades")
	activities.Post("/:id/realizar", activityHandler.Complete)

	// Geolocalización (protegido)
	geoGroup := protected.Group("/geo")
	geoHandler := NewGeoHandler(deps.BaseCtx, deps.GeoCache, deps.Refresher)
	geoGroup.Get("/coordenadas", geoHandler.Coordinates)
	geoGroup.Post("/refrescar", geoHandler.Refresh)
}
