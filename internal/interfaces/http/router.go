package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Simulation *simulation.UseCase
	Health     dto.HealthResponse
	Config     dto.ConfigResponse
	Metrics    http.Handler // nil = sin /metrics
	JWTSecret  string       // vacío = /api sin autenticación
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	system := NewSystemHandler(deps.Health, deps.Config)
	app.Get("/health", system.Health)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Config (público: lo consume el frontend antes de autenticar)
	api.Get("/config", system.Config)

	// Simulación (protegida si hay JWT_SECRET)
	protected := api
	if deps.JWTSecret != "" {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}
	simHandler := NewSimulationHandler(deps.Simulation)
	protected.Post("/simulate-profit", simHandler.Simulate)
	protected.Post("/simulate-profit/report", simHandler.Report)
}
