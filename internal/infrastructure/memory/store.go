// Package memory implementa los puertos de consulta sobre mapas en memoria.
// Sirve para desarrollo local (STORE_DRIVER=memory) y como doble en tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
)

var (
	_ repository.ProductLookup     = (*Store)(nil)
	_ repository.CouponLookup      = (*Store)(nil)
	_ repository.PaymentTermLookup = (*Store)(nil)
)

// Store catálogo en memoria, seguro para uso concurrente.
type Store struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
	terms    map[int64]entity.PaymentTerm
	offers   map[int64]entity.DiscountOffer
	coupons  map[string]entity.Coupon
	now      func() time.Time
}

// NewStore crea un almacén vacío con el reloj del sistema.
func NewStore() *Store {
	return &Store{
		products: make(map[int64]entity.Product),
		terms:    make(map[int64]entity.PaymentTerm),
		offers:   make(map[int64]entity.DiscountOffer),
		coupons:  make(map[string]entity.Coupon),
		now:      time.Now,
	}
}

// SetClock reemplaza el reloj usado para la vigencia de cupones.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Lookups expone el almacén como los tres puertos del motor.
func (s *Store) Lookups() repository.Lookups {
	return repository.Lookups{Products: s, Coupons: s, PaymentTerms: s}
}

func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *Store) AddPaymentTerm(t entity.PaymentTerm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[t.ID] = t
}

func (s *Store) AddOffer(o entity.DiscountOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID] = o
}

// AddCoupon registra el cupón; el código se compara tal cual (sensible a mayúsculas).
func (s *Store) AddCoupon(c entity.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.Code] = c
}

// GetActiveProduct devuelve (nil, nil) si no existe o está inactivo.
func (s *Store) GetActiveProduct(_ context.Context, productID int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[productID]
	if !ok || !p.IsActive {
		return nil, nil
	}
	return &p, nil
}

// GetCouponDiscount devuelve el porcentaje de la oferta si el cupón es canjeable hoy.
func (s *Store) GetCouponDiscount(_ context.Context, code string) (*decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coupons[strings.TrimSpace(code)]
	if !ok {
		return nil, nil
	}
	offer, ok := s.offers[c.OfferID]
	if !ok || !c.RedeemableOn(offer, s.now()) {
		return nil, nil
	}
	pct := offer.DiscountPercentage
	return &pct, nil
}

// GetActivePaymentTerm devuelve (nil, nil) si no existe o está inactiva.
func (s *Store) GetActivePaymentTerm(_ context.Context, termID int64) (*entity.PaymentTerm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terms[termID]
	if !ok || !t.IsActive {
		return nil, nil
	}
	return &t, nil
}
