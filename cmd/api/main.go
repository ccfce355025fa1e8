package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
	"github.com/jhoicas/profit-simulator/internal/domain/profit"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/cache"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/memory"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/profit-simulator/internal/infrastructure/pdf"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/profit-simulator/internal/interfaces/http"
	"github.com/jhoicas/profit-simulator/pkg/config"
	"github.com/jhoicas/profit-simulator/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var lookups repository.Lookups
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		store.SeedDemo(time.Now())
		lookups = store.Lookups()
		log.Warn().Msg("catálogo en memoria con datos de demostración")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		lookups = postgres.Lookups(pool)
	}

	appMetrics := metrics.New("profitsim")

	// Caché Redis opcional para producto y condición de pago
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no responde; se consultará el origen hasta que vuelva")
		}
		cancel()

		lookups = cache.NewLookups(rdb, cfg.Redis.TTL, lookups.Products, lookups.PaymentTerms, appMetrics, log).Wrap(lookups)
	}

	engine := profit.NewEngine(profit.Policy{
		OperationalFeePct:         cfg.Simulation.OperationalFeePct,
		LiquidationStockThreshold: cfg.Simulation.LiquidationStockThreshold,
		HighDiscountPct:           cfg.Simulation.HighDiscountPct,
		CurrencySymbol:            cfg.Simulation.CurrencySymbol,
	})
	simulationUC := simulation.NewUseCase(
		lookups, engine, appMetrics, infrapdf.NewMarotoReportGenerator(), cfg.App.Name, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(appMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Profit Simulator API",
		}))
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Simulation: simulationUC,
		Health: dto.HealthResponse{
			Status:  "healthy",
			Service: cfg.App.Name,
			Version: cfg.App.Version,
		},
		Config: dto.ConfigResponse{
			AppName:        cfg.App.Name,
			PrimaryColor:   cfg.Branding.PrimaryColor,
			SecondaryColor: cfg.Branding.SecondaryColor,
			Environment:    cfg.App.Env,
		},
		Metrics:   appMetrics.Handler(),
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
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
