package entity

import "github.com/shopspring/decimal"

// ComputationBasis define sobre qué monto se calcula el descuento por pronto pago.
type ComputationBasis string

const (
	BasisBaseAmount  ComputationBasis = "base_amount"  // solo ingreso neto
	BasisTotalAmount ComputationBasis = "total_amount" // ingreso neto + impuesto
)

// PaymentTerm condición de pago (solo lectura). DiscountPercentage solo aplica si EarlyPaymentDiscount.
type PaymentTerm struct {
	ID                   int64            `json:"payment_term_id"`
	Name                 string           `json:"term_name"`
	NetDays              int              `json:"net_days"`
	EarlyPaymentDiscount bool             `json:"early_payment_discount"`
	DiscountPercentage   decimal.Decimal  `json:"discount_percentage"`
	DiscountDays         int              `json:"discount_days"`
	ComputationBasis     ComputationBasis `json:"early_pay_discount_computation"`
	IsActive             bool             `json:"is_active"`
}
