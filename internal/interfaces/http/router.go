package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rive3FY/magazzino-app/internal/application/auth"
	"github.com/Rive3FY/magazzino-app/internal/application/catalog"
	"github.com/Rive3FY/magazzino-app/internal/application/export"
	"github.com/Rive3FY/magazzino-app/internal/application/importer"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CatalogUC  *catalog.UseCase
	StockUC    *inventory.StockUseCase
	MovementUC *inventory.RecordMovementUseCase
	ImportUC   *importer.UseCase
	ExportUC   *export.UseCase
	JWTSecret  string
	Revoker    auth.TokenRevoker
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (pubblico)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotte protette (richiedono Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revoker))
	protected.Post("/auth/logout", authHandler.Logout)

	// Anagrafica articoli (protetto)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Get("/", itemHandler.List)
	items.Get("/suggest", itemHandler.Suggest)

	// Giacenze calcolate (protetto)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.Page)
	stock.Get("/:code", stockHandler.ByCode)

	// Libro movimenti (protetto; delete solo admin)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)
	movements.Delete("/:id", RequireAdmin(), movementHandler.Delete)

	// Import anagrafica (solo admin)
	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/import", RequireAdmin(), importHandler.Import)

	// Export giacenze (protetto)
	exportGroup := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup.Get("/stock.xlsx", exportHandler.StockXLSX)
	exportGroup.Get("/stock.pdf", exportHandler.StockPDF)
}
