package profit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// Nombres de los escenarios what-if, en el orden en que se devuelven.
const (
	ScenarioNoDiscount = "No Discount (Full Margin)"
	ScenarioCurrent    = "Current Discount Applied"
	ScenarioBreakeven  = "Maximum Breakeven Discount"
)

// CompareScenarios calcula siempre tres escenarios: sin descuento, descuento actual
// y descuento de equilibrio. Los dos primeros son rentables con utilidad > 0; el de
// equilibrio con utilidad >= 0, porque por definición ronda el cero.
func (e *Engine) CompareScenarios(
	product entity.Product,
	quantity decimal.Decimal,
	currentDiscountPct decimal.Decimal,
	term entity.PaymentTerm,
) [3]entity.ScenarioComparison {
	noDiscount := e.CalculateWaterfall(product, quantity, decimal.Zero, term)
	current := e.CalculateWaterfall(product, quantity, currentDiscountPct, term)

	breakevenPct := e.BreakevenDiscount(product, quantity, term)
	breakeven := e.CalculateWaterfall(product, quantity, breakevenPct, term)

	return [3]entity.ScenarioComparison{
		{
			ScenarioName:       ScenarioNoDiscount,
			DiscountPercentage: decimal.Zero,
			NetProfit:          noDiscount.NetProfit,
			ProfitMargin:       noDiscount.ProfitMarginPercentage,
			IsProfitable:       noDiscount.NetProfit.IsPositive(),
		},
		{
			ScenarioName:       ScenarioCurrent,
			DiscountPercentage: currentDiscountPct,
			NetProfit:          current.NetProfit,
			ProfitMargin:       current.ProfitMarginPercentage,
			IsProfitable:       current.NetProfit.IsPositive(),
		},
		{
			ScenarioName:       ScenarioBreakeven,
			DiscountPercentage: breakevenPct,
			NetProfit:          breakeven.NetProfit,
			ProfitMargin:       breakeven.ProfitMarginPercentage,
			IsProfitable:       !breakeven.NetProfit.IsNegative(),
		},
	}
}
