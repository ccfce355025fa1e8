// Package money concentra el redondeo y parseo de montos con decimal exacto.
//
// Todo monto que sale del motor de simulación pasa por Round: redondeo
// half-up (los empates se alejan de cero) a 2 decimales. Usar redondeo
// bancario aquí produce diferencias de centavos contra los reportes
// históricos.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidOperation se devuelve ante entradas no finitas o no numéricas.
var ErrInvalidOperation = errors.New("operación decimal inválida")

// Places es la precisión de montos (centavos).
const Places int32 = 2

// QuantityPlaces es la precisión de cantidades (3 decimales).
const QuantityPlaces int32 = 3

var hundred = decimal.NewFromInt(100)

// Round redondea half-up a 2 decimales.
func Round(v decimal.Decimal) decimal.Decimal {
	return v.Round(Places)
}

// RoundQuantity redondea half-up a 3 decimales.
func RoundQuantity(v decimal.Decimal) decimal.Decimal {
	return v.Round(QuantityPlaces)
}

// Fixed formatea un monto con exactamente 2 decimales ("200.00", "0.00").
func Fixed(v decimal.Decimal) string {
	return v.StringFixed(Places)
}

// FixedQuantity formatea una cantidad con exactamente 3 decimales ("2.000").
func FixedQuantity(v decimal.Decimal) string {
	return v.StringFixed(QuantityPlaces)
}

// Quantize redondea v al exponente del patrón dado ("0.01", "0.001", "1").
func Quantize(v decimal.Decimal, pattern string) (decimal.Decimal, error) {
	exp, err := Parse(pattern)
	if err != nil {
		return decimal.Zero, fmt.Errorf("patrón %q: %w", pattern, err)
	}
	if !exp.IsPositive() {
		return decimal.Zero, fmt.Errorf("patrón %q no positivo: %w", pattern, ErrInvalidOperation)
	}
	return v.Round(-exp.Exponent()), nil
}

// Parse convierte un string a decimal. NaN, Inf y textos no numéricos fallan
// con ErrInvalidOperation.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor vacío: %w", ErrInvalidOperation)
	}
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity", "snan":
		return decimal.Zero, fmt.Errorf("valor no finito %q: %w", s, ErrInvalidOperation)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor %q: %w", s, ErrInvalidOperation)
	}
	return d, nil
}

// Percent calcula base × pct / 100 sin pérdida (desplazamiento decimal).
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Shift(-2)
}

// Ratio devuelve num / den × 100 redondeado a 2 decimales. Con den <= 0 devuelve 0.00.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return Round(num.Mul(hundred).DivRound(den, 20))
}
