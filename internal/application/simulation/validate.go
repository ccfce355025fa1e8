package simulation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/domain"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/pkg/money"
)

var defaultQuantity = decimal.NewFromInt(1)

// Validator convierte la petición cruda en una SimulationRequest o en un
// *domain.ValidationError con todos los campos rechazados.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador; los errores usan el nombre JSON del campo.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate aplica las reglas de entrada. La cantidad se cuantiza a 3 decimales
// sin avisar; si queda en 0 se rechaza.
func (val *Validator) Validate(in dto.SimulateProfitRequest) (entity.SimulationRequest, error) {
	verr := &domain.ValidationError{}

	if err := val.v.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return entity.SimulationRequest{}, err
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), "debe ser un entero positivo")
		}
	}

	quantity := defaultQuantity
	if present(in.Quantity) {
		q, err := parseQuantity(in.Quantity)
		switch {
		case err != nil:
			verr.Add("quantity", "debe ser un número finito")
		case !money.RoundQuantity(q).IsPositive():
			verr.Add("quantity", "debe ser mayor que 0")
		default:
			quantity = money.RoundQuantity(q)
		}
	}

	if verr.HasErrors() {
		return entity.SimulationRequest{}, verr
	}

	var coupon string
	if in.CouponCode != nil {
		coupon = strings.TrimSpace(*in.CouponCode)
	}

	return entity.SimulationRequest{
		ProductID:     in.ProductID,
		CouponCode:    coupon,
		PaymentTermID: in.PaymentTermID,
		Quantity:      quantity,
	}, nil
}

// TypeErrors convierte un error de tipos al decodificar body en un
// *domain.ValidationError con cada campo afectado. Cualquier otro error
// (JSON mal formado, content-type) se devuelve tal cual.
func TypeErrors(body []byte, decodeErr error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(decodeErr, &typeErr) {
		return decodeErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return decodeErr
	}
	verr := &domain.ValidationError{}
	for _, field := range []string{"product_id", "payment_term_id"} {
		var id int64
		if v, ok := raw[field]; ok && json.Unmarshal(v, &id) != nil {
			verr.Add(field, "debe ser un entero positivo")
		}
	}
	if v, ok := raw["coupon_code"]; ok {
		var code *string
		if json.Unmarshal(v, &code) != nil {
			verr.Add("coupon_code", "debe ser texto")
		}
	}
	if v, ok := raw["quantity"]; ok && present(v) {
		if _, err := parseQuantity(v); err != nil {
			verr.Add("quantity", "debe ser un número finito")
		}
	}
	if !verr.HasErrors() {
		verr.Add(typeErr.Field, "tipo inválido")
	}
	return verr
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseQuantity acepta 2, 2.5 o "2.5". NaN, Inf y textos no numéricos fallan
// con money.ErrInvalidOperation.
func parseQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, fmt.Errorf("quantity: %w", money.ErrInvalidOperation)
		}
		return money.Parse(s)
	}
	return money.Parse(string(raw))
}
