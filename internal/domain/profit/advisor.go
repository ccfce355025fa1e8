package profit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// Factores de riesgo con texto fijo.
const (
	RiskNegativeMargin         = "Negative profit margin"
	RiskCriticalHighInventory  = "Critical margin but high inventory"
	RiskCriticalLowInventory   = "Critical margin with low inventory"
	RiskStockBelowMinimum      = "Stock below minimum threshold"
	riskHighDiscountFormat     = "High discount applied: %s%%"
	riskEarlyPaymentCostFormat = "Early payment discount cost: %s%s"
)

// HealthFor clasifica el margen únicamente por umbrales: < 5 crítico, < 15 alerta, resto sano.
func HealthFor(marginPct decimal.Decimal) entity.HealthStatus {
	switch {
	case marginPct.LessThan(fivePct):
		return entity.HealthCritical
	case marginPct.LessThan(fifteenPct):
		return entity.HealthWarning
	default:
		return entity.HealthHealthy
	}
}

// AnalyzeMargin evalúa la tabla de decisión sobre el margen de la cascada.
// El estado de salud y la estrategia se calculan por separado: un margen negativo
// es "critical" por umbral y "loss_transaction" por su propia regla.
func (e *Engine) AnalyzeMargin(
	w entity.MoneyWaterfall,
	product entity.Product,
	discountPct decimal.Decimal,
) entity.MarginAnalysis {
	margin := w.ProfitMarginPercentage
	stock := product.CurrentStock
	sym := e.policy.CurrencySymbol
	risks := make([]string, 0, 4)

	var insight entity.StrategyInsight
	var recommendation string

	switch {
	case margin.IsNegative():
		insight = entity.InsightLossTransaction
		recommendation = fmt.Sprintf(
			"REJECT: This transaction results in a loss of %s%s. Consider reducing discount or rejecting the sale.",
			sym, w.NetProfit.Abs().StringFixed(2))
		risks = append(risks, RiskNegativeMargin)

	case margin.LessThan(fivePct):
		if stock.GreaterThan(e.policy.LiquidationStockThreshold) {
			insight = entity.InsightLiquidationAcceptable
			recommendation = fmt.Sprintf(
				"CAUTION: Minimal %s%% margin, but acceptable for inventory liquidation (stock: %s units). Approve for clearance purposes only.",
				margin.StringFixed(2), stock.String())
			risks = append(risks, RiskCriticalHighInventory)
		} else {
			insight = entity.InsightLossTransaction
			recommendation = fmt.Sprintf(
				"REJECT: Critical %s%% margin with low stock (%s units). This is a loss transaction - reduce discount or increase price.",
				margin.StringFixed(2), stock.String())
			risks = append(risks, RiskCriticalLowInventory)
		}

	case margin.LessThan(fifteenPct):
		insight = entity.InsightOptimalMargin
		recommendation = fmt.Sprintf(
			"APPROVE: Acceptable %s%% margin. Transaction is profitable but monitor closely for volume opportunities.",
			margin.StringFixed(2))
		if product.BelowMinimumStock() {
			risks = append(risks, RiskStockBelowMinimum)
		}

	default:
		insight = entity.InsightPremiumPricing
		recommendation = fmt.Sprintf(
			"EXCELLENT: Strong %s%% margin. Premium pricing achieved. Consider this as a benchmark for future pricing.",
			margin.StringFixed(2))
	}

	if discountPct.GreaterThan(e.policy.HighDiscountPct) {
		risks = append(risks, fmt.Sprintf(riskHighDiscountFormat, discountPct.StringFixed(2)))
	}
	if w.EarlyPaymentDiscount.IsPositive() {
		risks = append(risks, fmt.Sprintf(riskEarlyPaymentCostFormat, sym, w.EarlyPaymentDiscount.StringFixed(2)))
	}

	return entity.MarginAnalysis{
		HealthStatus:    HealthFor(margin),
		HealthScore:     margin,
		StrategyInsight: insight,
		Recommendation:  recommendation,
		RiskFactors:     risks,
	}
}
