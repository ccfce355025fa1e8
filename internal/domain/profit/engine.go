// Package profit contiene el motor de rentabilidad: cascada de ingresos y costos,
// búsqueda del descuento de equilibrio, diagnóstico de margen y escenarios what-if.
//
// Todas las funciones son puras: no hacen I/O ni guardan estado entre llamadas,
// por lo que un mismo Engine puede usarse desde cualquier número de goroutines.
package profit

import "github.com/shopspring/decimal"

// Policy parámetros de negocio del motor.
type Policy struct {
	OperationalFeePct         decimal.Decimal // sobrecosto operativo, % del ingreso bruto
	LiquidationStockThreshold decimal.Decimal // stock > umbral permite liquidar con margen crítico
	HighDiscountPct           decimal.Decimal // descuentos mayores se reportan como riesgo
	CurrencySymbol            string
}

// DefaultPolicy valores de referencia: 2.5% operativo, liquidación con stock > 50, descuento alto > 30%.
func DefaultPolicy() Policy {
	return Policy{
		OperationalFeePct:         decimal.RequireFromString("2.5"),
		LiquidationStockThreshold: decimal.NewFromInt(50),
		HighDiscountPct:           decimal.NewFromInt(30),
		CurrencySymbol:            "₹",
	}
}

// Engine servicio de dominio sin estado.
type Engine struct {
	policy Policy
}

// NewEngine construye el motor con la política dada.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy devuelve la política vigente.
func (e *Engine) Policy() Policy { return e.policy }

var (
	hundred       = decimal.NewFromInt(100)
	half          = decimal.RequireFromString("0.5")
	fivePct       = decimal.NewFromInt(5)
	fifteenPct    = decimal.NewFromInt(15)
	profitEpsilon = decimal.RequireFromString("0.01")
)
