package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
	"github.com/jhoicas/profit-simulator/internal/domain"
)

// writeError traduce errores de dominio a HTTP. Lo no reconocido es 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrArithmetic):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMessage(err)})
	case errors.Is(err, domain.ErrLookupUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "LOOKUP_UNAVAILABLE", Message: "almacén de datos no disponible, reintente más tarde"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}

// bodyError responde a un cuerpo que no se pudo decodificar. Un campo con tipo
// incorrecto es error de validación con el nombre del campo; JSON mal formado es INVALID_BODY.
func bodyError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(simulation.TypeErrors(c.Body(), err), &verr) {
		return writeError(c, verr)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
