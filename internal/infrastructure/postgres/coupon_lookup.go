package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/repository"
)

var _ repository.CouponLookup = (*CouponLookup)(nil)

// Vigencia evaluada por la base con su propia fecha (CURRENT_DATE), extremos incluidos.
const selectCouponDiscount = `
	SELECT o.discount_percentage
	FROM coupon_codes c
	JOIN discount_offers o ON o.discount_offer_id = c.discount_offer_id
	WHERE c.coupon_code = $1
	  AND c.is_active = TRUE
	  AND c.coupon_status = 'unused'
	  AND o.is_active = TRUE
	  AND CURRENT_DATE BETWEEN o.start_date AND o.end_date`

// CouponLookup resuelve cupones canjeables a su porcentaje de descuento.
type CouponLookup struct {
	q Querier
}

// NewCouponLookup construye el adaptador.
func NewCouponLookup(q Querier) *CouponLookup {
	return &CouponLookup{q: q}
}

// GetCouponDiscount devuelve (nil, nil) si el cupón no existe, ya se usó o está fuera de vigencia.
func (r *CouponLookup) GetCouponDiscount(ctx context.Context, code string) (*decimal.Decimal, error) {
	var pct decimal.Decimal
	err := r.q.QueryRow(ctx, selectCouponDiscount, code).Scan(&pct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, lookupFailed("get coupon", err)
	}
	return &pct, nil
}
