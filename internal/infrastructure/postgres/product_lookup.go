package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
)

var _ repository.ProductLookup = (*ProductLookup)(nil)

const selectActiveProduct = `
	SELECT product_id, product_name, product_code, sales_price, purchase_price,
	       sales_tax_percentage, current_stock, minimum_stock, is_active
	FROM products
	WHERE product_id = $1 AND is_active = TRUE`

// ProductLookup consulta productos activos del catálogo.
type ProductLookup struct {
	q Querier
}

// NewProductLookup construye el adaptador. Pasar pool o conexión (Querier).
func NewProductLookup(q Querier) *ProductLookup {
	return &ProductLookup{q: q}
}

// GetActiveProduct devuelve (nil, nil) si el producto no existe o está inactivo.
func (r *ProductLookup) GetActiveProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, selectActiveProduct, productID).Scan(
		&p.ID, &p.Name, &p.Code, &p.SalesPrice, &p.PurchasePrice,
		&p.SalesTaxPercentage, &p.CurrentStock, &p.MinimumStock, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, lookupFailed("get product", err)
	}
	return &p, nil
}
