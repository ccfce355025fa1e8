package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
)

var _ repository.PaymentTermLookup = (*PaymentTermLookup)(nil)

const selectActivePaymentTerm = `
	SELECT payment_term_id, term_name, net_days, early_payment_discount,
	       discount_percentage, discount_days, early_pay_discount_computation, is_active
	FROM payment_terms
	WHERE payment_term_id = $1 AND is_active = TRUE`

// PaymentTermLookup consulta condiciones de pago activas.
type PaymentTermLookup struct {
	q Querier
}

// NewPaymentTermLookup construye el adaptador.
func NewPaymentTermLookup(q Querier) *PaymentTermLookup {
	return &PaymentTermLookup{q: q}
}

// GetActivePaymentTerm devuelve (nil, nil) si no existe o está inactiva.
// Las columnas de pronto pago admiten NULL cuando el descuento no aplica.
func (r *PaymentTermLookup) GetActivePaymentTerm(ctx context.Context, termID int64) (*entity.PaymentTerm, error) {
	var (
		t     entity.PaymentTerm
		pct   decimal.NullDecimal
		days  *int32
		basis *string
	)
	err := r.q.QueryRow(ctx, selectActivePaymentTerm, termID).Scan(
		&t.ID, &t.Name, &t.NetDays, &t.EarlyPaymentDiscount,
		&pct, &days, &basis, &t.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, lookupFailed("get payment term", err)
	}

	t.DiscountPercentage = decimal.Zero
	if pct.Valid {
		t.DiscountPercentage = pct.Decimal
	}
	if days != nil {
		t.DiscountDays = int(*days)
	}
	t.ComputationBasis = entity.BasisBaseAmount
	if basis != nil && *basis == string(entity.BasisTotalAmount) {
		t.ComputationBasis = entity.BasisTotalAmount
	}
	return &t, nil
}

// Lookups agrupa los tres adaptadores sobre el mismo pool.
func Lookups(q Querier) repository.Lookups {
	return repository.Lookups{
		Products:     NewProductLookup(q),
		Coupons:      NewCouponLookup(q),
		PaymentTerms: NewPaymentTermLookup(q),
	}
}
