package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponStatus estado de uso de un cupón.
type CouponStatus string

const (
	CouponUnused  CouponStatus = "unused"
	CouponUsed    CouponStatus = "used"
	CouponExpired CouponStatus = "expired"
)

// DiscountOffer campaña de descuento con vigencia [StartDate, EndDate] inclusive (fechas sin hora).
type DiscountOffer struct {
	ID                 int64
	Name               string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool
}

// Coupon código canjeable asociado a una oferta.
type Coupon struct {
	ID       int64
	Code     string
	OfferID  int64
	Status   CouponStatus
	IsActive bool
}

// RedeemableOn aplica la regla de vigencia: cupón activo y sin usar, oferta activa
// y el día de today dentro de la vigencia de la oferta (ambos extremos incluidos).
func (c Coupon) RedeemableOn(offer DiscountOffer, today time.Time) bool {
	if !c.IsActive || c.Status != CouponUnused || !offer.IsActive || c.OfferID != offer.ID {
		return false
	}
	day := dateOnly(today)
	return !day.Before(dateOnly(offer.StartDate)) && !day.After(dateOnly(offer.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
