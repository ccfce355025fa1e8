package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// Puertos de lectura que consume el motor de simulación (DIP).
// Convención: (nil, nil) cuando no existe; fallas de infraestructura envuelven domain.ErrLookupUnavailable.

// ProductLookup obtiene productos activos.
type ProductLookup interface {
	GetActiveProduct(ctx context.Context, productID int64) (*entity.Product, error)
}

// CouponLookup resuelve un código de cupón a su porcentaje de descuento vigente.
// Devuelve nil si el cupón no existe, está usado, inactivo o fuera de vigencia.
type CouponLookup interface {
	GetCouponDiscount(ctx context.Context, code string) (*decimal.Decimal, error)
}

// PaymentTermLookup obtiene condiciones de pago activas.
type PaymentTermLookup interface {
	GetActivePaymentTerm(ctx context.Context, termID int64) (*entity.PaymentTerm, error)
}

// Lookups agrupa los tres puertos para inyectarlos juntos.
type Lookups struct {
	Products     ProductLookup
	Coupons      CouponLookup
	PaymentTerms PaymentTermLookup
}
