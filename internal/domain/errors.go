package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/profit-simulator/pkg/money"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrLookupUnavailable = errors.New("almacén de datos no disponible")
	ErrArithmetic        = money.ErrInvalidOperation
)

// FieldError describe un campo rechazado en la validación.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumera los campos inválidos de una petición. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add agrega un campo inválido.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors indica si se registró al menos un campo.
func (e *ValidationError) HasErrors() bool { return e != nil && len(e.Fields) > 0 }

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Entidades que el motor consulta.
const (
	EntityProduct     = "product"
	EntityCoupon      = "coupon"
	EntityPaymentTerm = "payment_term"
)

// NotFoundError indica qué entidad no existe, está inactiva o vencida. errors.Is(err, ErrNotFound) es true.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	switch e.Entity {
	case EntityProduct:
		return fmt.Sprintf("producto %s no encontrado o inactivo", e.Key)
	case EntityCoupon:
		return fmt.Sprintf("cupón '%s' no encontrado o vencido", e.Key)
	case EntityPaymentTerm:
		return fmt.Sprintf("condición de pago %s no encontrada", e.Key)
	default:
		return fmt.Sprintf("%s %s no encontrado", e.Entity, e.Key)
	}
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
