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
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/geo"
	apppipeline "github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/geocoding"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/rediscache"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
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

	// appCtx vive hasta el shutdown; las tareas de fondo cuelgan de él.
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	pool, err := postgres.NewPool(appCtx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := rediscache.NewClient(appCtx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo, dealRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, companyRepo)
	dealUC := usecase.NewDealUseCase(dealRepo, activityRepo, companyRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo, dealRepo)
	moveUC := apppipeline.NewMoveUseCase(dealRepo, companyRepo, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Caché de coordenadas: blob en Redis + geocodificador externo.
	geoCache := geo.NewCache(rediscache.NewGeoCacheStore(redisClient), cfg.Geo.CacheTTLDays)
	geocoder := geocoding.NewClient(cfg.Geo)
	refresher := geo.NewRefresher(geoCache, geocoder, companyRepo,
		cfg.Geo.PollInterval, cfg.Geo.PollTimeout, log.Zerolog())

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
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		ContactUC:  contactUC,
		DealUC:     dealUC,
		ActivityUC: activityUC,
		MoveUC:     moveUC,
		AuthUC:     authUC,
		GeoCache:   geoCache,
		Refresher:  refresher,
		BaseCtx:    appCtx,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Primer ciclo de geocodificación al arrancar; los siguientes se disparan
	// desde POST /api/geo/refrescar.
	refresher.Start(appCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	cancelApp()
	refresher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
