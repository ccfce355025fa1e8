package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
)

// SimulationHandler expone el simulador de rentabilidad.
type SimulationHandler struct {
	uc *simulation.UseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *simulation.UseCase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// Simulate godoc
// @Summary      Simular rentabilidad de una venta
// @Description  Cascada de costos, diagnóstico del margen y escenarios what-if para producto, cupón y condición de pago.
// @Tags         simulation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulateProfitRequest  true  "Producto, cupón opcional, condición de pago y cantidad"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/simulate-profit [post]
func (h *SimulationHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulateProfitRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	out, err := h.uc.Simulate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de una simulación
// @Tags         simulation
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SimulateProfitRequest  true  "Mismo cuerpo que /api/simulate-profit"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/simulate-profit/report [post]
func (h *SimulationHandler) Report(c *fiber.Ctx) error {
	var in dto.SimulateProfitRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	pdfBytes, filename, err := h.uc.Report(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
