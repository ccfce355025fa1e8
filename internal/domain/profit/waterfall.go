package profit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/pkg/money"
)

// CalculateWaterfall descompone la venta en ingresos, costos y utilidad neta.
// Cada paso se redondea a centavos antes de usarse en el siguiente: el orden
// de redondeo forma parte del resultado y no debe cambiarse.
func (e *Engine) CalculateWaterfall(
	product entity.Product,
	quantity decimal.Decimal,
	discountPct decimal.Decimal,
	term entity.PaymentTerm,
) entity.MoneyWaterfall {
	// 1. Ingreso bruto
	gross := money.Round(product.SalesPrice.Mul(quantity))

	// 2-3. Descuento e ingreso neto
	discount := money.Round(money.Percent(gross, discountPct))
	net := gross.Sub(discount)

	// 4. Costo de la mercancía vendida
	cogs := money.Round(product.PurchasePrice.Mul(quantity))

	// 5. Impuesto sobre el ingreso ya descontado
	tax := money.Round(money.Percent(net, product.SalesTaxPercentage))

	// 6. Descuento por pronto pago (costo, no cambia el ingreso)
	early := decimal.Zero
	if term.EarlyPaymentDiscount {
		base := net
		if term.ComputationBasis != entity.BasisBaseAmount {
			base = net.Add(tax)
		}
		early = money.Round(money.Percent(base, term.DiscountPercentage))
	}

	// 7. Gastos operativos sobre el ingreso bruto
	fees := money.Round(money.Percent(gross, e.policy.OperationalFeePct))

	// 8-9. Costos totales y utilidad
	total := cogs.Add(tax).Add(early).Add(fees)
	profit := net.Sub(total)

	// 10. Margen sobre ingreso neto; 0.00 si no hay ingreso
	return entity.MoneyWaterfall{
		GrossRevenue:           gross,
		DiscountAmount:         discount,
		NetRevenue:             net,
		COGS:                   cogs,
		SalesTax:               tax,
		EarlyPaymentDiscount:   early,
		OperationalFees:        fees,
		TotalCosts:             total,
		NetProfit:              profit,
		ProfitMarginPercentage: money.Ratio(profit, net),
	}
}
