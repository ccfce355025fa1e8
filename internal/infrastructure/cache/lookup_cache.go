// Package cache decora los puertos de consulta con una caché Redis de lectura.
// Solo productos y condiciones de pago: la validez de un cupón depende de la
// fecha y de su estado, así que siempre se consulta al origen.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/profit-simulator/internal/domain"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
	"github.com/jhoicas/profit-simulator/pkg/logger"
)

const keyPrefix = "profitsim:"

var (
	_ repository.ProductLookup     = (*Lookups)(nil)
	_ repository.PaymentTermLookup = (*Lookups)(nil)
)

// Observer recibe aciertos y fallos de caché (métricas).
type Observer interface {
	ObserveCacheLookup(entity string, hit bool)
}

// Lookups caché de lectura sobre los puertos de producto y condición de pago.
// Los "no encontrado" no se guardan; una falla de Redis degrada a consultar el origen.
// Un producto o condición desactivados se siguen sirviendo hasta que vence el TTL.
type Lookups struct {
	client   *redis.Client
	ttl      time.Duration
	products repository.ProductLookup
	terms    repository.PaymentTermLookup
	observer Observer
	log      *logger.Logger
}

// NewLookups construye la caché. observer puede ser nil.
func NewLookups(
	client *redis.Client,
	ttl time.Duration,
	products repository.ProductLookup,
	terms repository.PaymentTermLookup,
	observer Observer,
	log *logger.Logger,
) *Lookups {
	if log == nil {
		log = logger.Nop()
	}
	return &Lookups{
		client:   client,
		ttl:      ttl,
		products: products,
		terms:    terms,
		observer: observer,
		log:      log.Component("cache"),
	}
}

// Wrap devuelve inner con productos y condiciones de pago servidos por la caché.
func (c *Lookups) Wrap(inner repository.Lookups) repository.Lookups {
	return repository.Lookups{Products: c, Coupons: inner.Coupons, PaymentTerms: c}
}

// GetActiveProduct consulta Redis y, si no está, el origen.
func (c *Lookups) GetActiveProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	key := productKey(productID)
	var cached entity.Product
	if c.get(ctx, domain.EntityProduct, key, &cached) {
		return &cached, nil
	}
	p, err := c.products.GetActiveProduct(ctx, productID)
	if err != nil || p == nil {
		return p, err
	}
	c.set(ctx, key, p)
	return p, nil
}

// GetActivePaymentTerm consulta Redis y, si no está, el origen.
func (c *Lookups) GetActivePaymentTerm(ctx context.Context, termID int64) (*entity.PaymentTerm, error) {
	key := paymentTermKey(termID)
	var cached entity.PaymentTerm
	if c.get(ctx, domain.EntityPaymentTerm, key, &cached) {
		return &cached, nil
	}
	t, err := c.terms.GetActivePaymentTerm(ctx, termID)
	if err != nil || t == nil {
		return t, err
	}
	c.set(ctx, key, t)
	return t, nil
}

func (c *Lookups) get(ctx context.Context, entityName, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.observe(entityName, false)
		return false
	case err != nil:
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, se consulta el origen")
		c.observe(entityName, false)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		c.observe(entityName, false)
		return false
	}
	c.observe(entityName, true)
	return true
}

func (c *Lookups) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
	}
}

func (c *Lookups) observe(entityName string, hit bool) {
	if c.observer != nil {
		c.observer.ObserveCacheLookup(entityName, hit)
	}
}

func productKey(id int64) string     { return keyPrefix + "product:" + strconv.FormatInt(id, 10) }
func paymentTermKey(id int64) string { return keyPrefix + "payment_term:" + strconv.FormatInt(id, 10) }
