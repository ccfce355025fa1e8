package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/pkg/money"
)

// SimulationRequest petición ya validada. CouponCode vacío = sin cupón.
type SimulationRequest struct {
	ProductID     int64
	CouponCode    string
	PaymentTermID int64
	Quantity      decimal.Decimal // > 0, 3 decimales
}

// HasCoupon indica si se debe consultar un cupón.
func (r SimulationRequest) HasCoupon() bool { return r.CouponCode != "" }

// MoneyWaterfall descomposición ingreso → costos → utilidad neta. Montos a 2 decimales.
type MoneyWaterfall struct {
	GrossRevenue           decimal.Decimal `json:"gross_revenue"`
	DiscountAmount         decimal.Decimal `json:"discount_amount"`
	NetRevenue             decimal.Decimal `json:"net_revenue"`
	COGS                   decimal.Decimal `json:"cogs"`
	SalesTax               decimal.Decimal `json:"sales_tax"`
	EarlyPaymentDiscount   decimal.Decimal `json:"early_payment_discount"`
	OperationalFees        decimal.Decimal `json:"operational_fees"`
	TotalCosts             decimal.Decimal `json:"total_costs"`
	NetProfit              decimal.Decimal `json:"net_profit"`
	ProfitMarginPercentage decimal.Decimal `json:"profit_margin_percentage"`
}

// MarshalJSON emite los montos como texto con 2 decimales fijos.
func (w MoneyWaterfall) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		GrossRevenue           string `json:"gross_revenue"`
		DiscountAmount         string `json:"discount_amount"`
		NetRevenue             string `json:"net_revenue"`
		COGS                   string `json:"cogs"`
		SalesTax               string `json:"sales_tax"`
		EarlyPaymentDiscount   string `json:"early_payment_discount"`
		OperationalFees        string `json:"operational_fees"`
		TotalCosts             string `json:"total_costs"`
		NetProfit              string `json:"net_profit"`
		ProfitMarginPercentage string `json:"profit_margin_percentage"`
	}{
		GrossRevenue:           money.Fixed(w.GrossRevenue),
		DiscountAmount:         money.Fixed(w.DiscountAmount),
		NetRevenue:             money.Fixed(w.NetRevenue),
		COGS:                   money.Fixed(w.COGS),
		SalesTax:               money.Fixed(w.SalesTax),
		EarlyPaymentDiscount:   money.Fixed(w.EarlyPaymentDiscount),
		OperationalFees:        money.Fixed(w.OperationalFees),
		TotalCosts:             money.Fixed(w.TotalCosts),
		NetProfit:              money.Fixed(w.NetProfit),
		ProfitMarginPercentage: money.Fixed(w.ProfitMarginPercentage),
	})
}

// HealthStatus clasificación del margen en tres niveles.
type HealthStatus string

const (
	HealthCritical HealthStatus = "critical" // < 5%
	HealthWarning  HealthStatus = "warning"  // 5-15%
	HealthHealthy  HealthStatus = "healthy"  // >= 15%
)

// StrategyInsight recomendación comercial derivada del margen y el stock.
type StrategyInsight string

const (
	InsightLossTransaction       StrategyInsight = "loss_transaction"
	InsightLiquidationAcceptable StrategyInsight = "liquidation_acceptable"
	InsightOptimalMargin         StrategyInsight = "optimal_margin"
	InsightPremiumPricing        StrategyInsight = "premium_pricing"
)

// MarginAnalysis diagnóstico del margen de una simulación.
type MarginAnalysis struct {
	HealthStatus    HealthStatus    `json:"health_status"`
	HealthScore     decimal.Decimal `json:"health_score"`
	StrategyInsight StrategyInsight `json:"strategy_insight"`
	Recommendation  string          `json:"recommendation"`
	RiskFactors     []string        `json:"risk_factors"`
}

type marginAnalysisJSON MarginAnalysis

// MarshalJSON emite health_score con 2 decimales fijos.
func (a MarginAnalysis) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		marginAnalysisJSON
		HealthScore string `json:"health_score"`
	}{marginAnalysisJSON(a), money.Fixed(a.HealthScore)})
}

// ScenarioComparison resultado de un escenario what-if.
type ScenarioComparison struct {
	ScenarioName       string          `json:"scenario_name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
	IsProfitable       bool            `json:"is_profitable"`
}

type scenarioComparisonJSON ScenarioComparison

// MarshalJSON emite porcentaje, utilidad y margen con 2 decimales fijos.
func (s ScenarioComparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		scenarioComparisonJSON
		DiscountPercentage string `json:"discount_percentage"`
		NetProfit          string `json:"net_profit"`
		ProfitMargin       string `json:"profit_margin"`
	}{
		scenarioComparisonJSON: scenarioComparisonJSON(s),
		DiscountPercentage:     money.Fixed(s.DiscountPercentage),
		NetProfit:              money.Fixed(s.NetProfit),
		ProfitMargin:           money.Fixed(s.ProfitMargin),
	})
}
