package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/pkg/money"
)

// SimulateProfitRequest cuerpo de POST /api/simulate-profit.
// Quantity es opcional (por defecto 1) y acepta número o texto ("2.5"); se conserva
// crudo para que un valor no numérico se reporte como error del campo.
// CouponCode vacío equivale a sin cupón.
type SimulateProfitRequest struct {
	ProductID     int64           `json:"product_id" validate:"gt=0"`
	CouponCode    *string         `json:"coupon_code"`
	PaymentTermID int64           `json:"payment_term_id" validate:"gt=0"`
	Quantity      json.RawMessage `json:"quantity,omitempty" swaggertype:"number"`
}

// ProductInfo resumen del producto y de las condiciones simuladas.
type ProductInfo struct {
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductCode        string          `json:"product_code"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	QuantitySimulated  decimal.Decimal `json:"quantity_simulated"`
	CouponApplied      *string         `json:"coupon_applied"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	PaymentTerm        string          `json:"payment_term"`
}

type productInfoJSON ProductInfo

// MarshalJSON emite cantidades con 3 decimales y el descuento con 2.
func (p ProductInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		productInfoJSON
		CurrentStock       string `json:"current_stock"`
		QuantitySimulated  string `json:"quantity_simulated"`
		DiscountPercentage string `json:"discount_percentage"`
	}{
		productInfoJSON:    productInfoJSON(p),
		CurrentStock:       money.FixedQuantity(p.CurrentStock),
		QuantitySimulated:  money.FixedQuantity(p.QuantitySimulated),
		DiscountPercentage: money.Fixed(p.DiscountPercentage),
	})
}

// SimulationResponse resultado completo de una simulación.
type SimulationResponse struct {
	SimulationID   string                      `json:"simulation_id"`
	ProductInfo    ProductInfo                 `json:"product_info"`
	Waterfall      entity.MoneyWaterfall       `json:"waterfall"`
	MarginAnalysis entity.MarginAnalysis       `json:"margin_analysis"`
	Scenarios      []entity.ScenarioComparison `json:"scenarios"`
	Timestamp      time.Time                   `json:"timestamp"`
}
