package profit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/pkg/money"
)

// MaxBreakevenIterations cota fija de la búsqueda binaria.
const MaxBreakevenIterations = 100

// BreakevenDiscount devuelve el mayor porcentaje de descuento con utilidad ≈ 0,
// redondeado a 2 decimales.
//
// Supone que la utilidad no crece al aumentar el descuento. Una regla de costos
// que dependa del descuento de otra forma rompería la búsqueda binaria.
func (e *Engine) BreakevenDiscount(
	product entity.Product,
	quantity decimal.Decimal,
	term entity.PaymentTerm,
) decimal.Decimal {
	return money.Round(e.solveBreakeven(product, quantity, term))
}

// solveBreakeven devuelve el punto sin redondear: el punto medio donde |utilidad| < 0.01,
// o el extremo inferior si se agotan las iteraciones.
func (e *Engine) solveBreakeven(
	product entity.Product,
	quantity decimal.Decimal,
	term entity.PaymentTerm,
) decimal.Decimal {
	low, high := decimal.Zero, hundred

	for i := 0; i < MaxBreakevenIterations; i++ {
		mid := low.Add(high).Mul(half)
		w := e.CalculateWaterfall(product, quantity, mid, term)

		if w.NetProfit.Abs().LessThan(profitEpsilon) {
			return mid
		}
		if w.NetProfit.IsPositive() {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}
