package entity

import "github.com/shopspring/decimal"

// Product es la instantánea de solo lectura de un producto activo del catálogo.
// Precios con 2 decimales, stock con 3.
type Product struct {
	ID                 int64           `json:"product_id"`
	Name               string          `json:"product_name"`
	Code               string          `json:"product_code"`
	SalesPrice         decimal.Decimal `json:"sales_price"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	SalesTaxPercentage decimal.Decimal `json:"sales_tax_percentage"` // 0-100
	CurrentStock       decimal.Decimal `json:"current_stock"`
	MinimumStock       decimal.Decimal `json:"minimum_stock"`
	IsActive           bool            `json:"is_active"`
}

// BelowMinimumStock indica si el stock actual está por debajo del mínimo configurado.
func (p Product) BelowMinimumStock() bool {
	return p.CurrentStock.LessThan(p.MinimumStock)
}
