package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Rive3FY/magazzino-app/internal/application/auth"
	"github.com/Rive3FY/magazzino-app/internal/application/catalog"
	"github.com/Rive3FY/magazzino-app/internal/application/export"
	"github.com/Rive3FY/magazzino-app/internal/application/importer"
	"github.com/Rive3FY/magazzino-app/internal/application/inventory"
	infrapdf "github.com/Rive3FY/magazzino-app/internal/infrastructure/pdf"
	"github.com/Rive3FY/magazzino-app/internal/infrastructure/postgres"
	infraredis "github.com/Rive3FY/magazzino-app/internal/infrastructure/redis"
	"github.com/Rive3FY/magazzino-app/internal/infrastructure/spreadsheet"
	httpRouter "github.com/Rive3FY/magazzino-app/internal/interfaces/http"
	"github.com/Rive3FY/magazzino-app/pkg/config"
	"github.com/Rive3FY/magazzino-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Denylist di revoca token: senza Redis il logout resta solo client-side.
	var revoker auth.TokenRevoker = infraredis.NoopDenylist{}
	if cfg.Redis.Addr != "" {
		denylist, err := infraredis.NewDenylist(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connessione a Redis")
		}
		defer denylist.Close()
		revoker = denylist
	}

	stockUC := inventory.NewStockUseCase(itemRepo, movementRepo)
	movementUC := inventory.NewRecordMovementUseCase(itemRepo, movementRepo, stockUC)
	catalogUC := catalog.NewUseCase(itemRepo)
	importUC := importer.NewUseCase(spreadsheet.NewExcelReader(), txRunner)
	exportUC := export.NewUseCase(stockUC, spreadsheet.NewExcelWriter(), infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewUseCase(userRepo, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // file di anagrafica fino a 20 MB
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	if mw, ok := httpRouter.SwaggerMiddleware("./docs/swagger.json", "Magazzino API"); ok {
		app.Use(mw)
	} else {
		log.Warn().Msg("docs/swagger.json non trovato, Swagger UI disabilitata")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		StockUC:    stockUC,
		MovementUC: movementUC,
		ImportUC:   importUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.JWT.Secret,
		Revoker:    revoker,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
