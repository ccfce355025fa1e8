package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
)

// SystemHandler salud del servicio y configuración pública.
type SystemHandler struct {
	health dto.HealthResponse
	config dto.ConfigResponse
}

// NewSystemHandler construye el handler con respuestas fijas.
func NewSystemHandler(health dto.HealthResponse, config dto.ConfigResponse) *SystemHandler {
	return &SystemHandler{health: health, config: config}
}

// Health godoc
// @Summary  Estado del servicio
// @Tags     system
// @Produce  json
// @Success  200  {object}  dto.HealthResponse
// @Router   /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.health)
}

// Config godoc
// @Summary  Configuración pública (marca y entorno)
// @Tags     system
// @Produce  json
// @Success  200  {object}  dto.ConfigResponse
// @Router   /api/config [get]
func (h *SystemHandler) Config(c *fiber.Ctx) error {
	return c.JSON(h.config)
}
