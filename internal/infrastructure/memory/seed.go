package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// Valores por defecto del catálogo de demostración.
var (
	demoStock        = decimal.NewFromInt(50)
	demoMinimumStock = decimal.NewFromInt(5)
	demoCostRatio    = decimal.RequireFromString("0.6")
)

// SeedDemo carga un catálogo pequeño para desarrollo local: productos con costo al
// 60% del precio, las condiciones de pago por defecto y dos cupones vigentes
// durante el año de today más uno vencido.
func (s *Store) SeedDemo(today time.Time) {
	products := []struct {
		name  string
		price string
		tax   string
		stock decimal.Decimal
	}{
		{"Classic Oxford Shirt", "100.00", "10", demoStock},
		{"Slim Fit Chinos", "1499.00", "5", decimal.NewFromInt(120)},
		{"Linen Kurta", "899.00", "12", decimal.NewFromInt(3)},
		{"Denim Jacket", "2499.00", "12", decimal.NewFromInt(8)},
	}
	for i, p := range products {
		price := decimal.RequireFromString(p.price)
		s.AddProduct(entity.Product{
			ID:                 int64(i + 1),
			Name:               p.name,
			Code:               fmt.Sprintf("LUV-%05d", i+1),
			SalesPrice:         price,
			PurchasePrice:      price.Mul(demoCostRatio).Round(2),
			SalesTaxPercentage: decimal.RequireFromString(p.tax),
			CurrentStock:       p.stock,
			MinimumStock:       demoMinimumStock,
			IsActive:           true,
		})
	}

	terms := []entity.PaymentTerm{
		{ID: 1, Name: "Immediate Payment", NetDays: 0},
		{ID: 2, Name: "Net 15", NetDays: 15},
		{ID: 3, Name: "Net 30", NetDays: 30},
		{ID: 4, Name: "Net 45", NetDays: 45},
		{
			ID: 5, Name: "2/10 Net 30", NetDays: 30, EarlyPaymentDiscount: true,
			DiscountPercentage: decimal.NewFromInt(2), DiscountDays: 10,
			ComputationBasis: entity.BasisTotalAmount,
		},
	}
	for _, t := range terms {
		t.IsActive = true
		if t.ComputationBasis == "" {
			t.ComputationBasis = entity.BasisBaseAmount
		}
		s.AddPaymentTerm(t)
	}

	year := today.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	s.AddOffer(entity.DiscountOffer{ID: 1, Name: "Welcome", DiscountPercentage: decimal.NewFromInt(10), StartDate: jan1, EndDate: dec31, IsActive: true})
	s.AddOffer(entity.DiscountOffer{ID: 2, Name: "Clearance", DiscountPercentage: decimal.NewFromInt(35), StartDate: jan1, EndDate: dec31, IsActive: true})
	s.AddOffer(entity.DiscountOffer{ID: 3, Name: "Last season", DiscountPercentage: decimal.NewFromInt(20), StartDate: jan1.AddDate(-1, 0, 0), EndDate: dec31.AddDate(-1, 0, 0), IsActive: true})

	s.AddCoupon(entity.Coupon{ID: 1, Code: "WELCOME10", OfferID: 1, Status: entity.CouponUnused, IsActive: true})
	s.AddCoupon(entity.Coupon{ID: 2, Code: "CLEAR35", OfferID: 2, Status: entity.CouponUnused, IsActive: true})
	s.AddCoupon(entity.Coupon{ID: 3, Code: "OLD20", OfferID: 3, Status: entity.CouponUnused, IsActive: true})
}
