package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":           "0.00",
		"37":          "37.00",
		"-37":         "-37.00",
		"999.999":     "1,000.00",
		"1234567.891": "1,234,567.89",
		"-100000.5":   "-100,000.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestPrintableSymbol(t *testing.T) {
	assert.Equal(t, "$", printableSymbol("$"))
	assert.Equal(t, "€", printableSymbol("€"))
	assert.Equal(t, fallbackSymbol, printableSymbol("₹"))
	assert.Equal(t, "", printableSymbol(""))
}

func TestGenerateSimulationReport(t *testing.T) {
	coupon := "SAVE10"
	sim := &dto.SimulationResponse{
		SimulationID: "4f6c1f0e-2b8a-4c4e-9d0f-6a5b3e2d1c0b",
		ProductInfo: dto.ProductInfo{
			ProductID: 1, ProductName: "Classic Oxford Shirt", ProductCode: "LUV-00001",
			CurrentStock: decimal.NewFromInt(50), QuantitySimulated: decimal.NewFromInt(2),
			CouponApplied: &coupon, DiscountPercentage: decimal.NewFromInt(10), PaymentTerm: "Net 30",
		},
		Waterfall: entity.MoneyWaterfall{
			GrossRevenue: decimal.RequireFromString("200.00"), NetProfit: decimal.RequireFromString("37.00"),
			ProfitMarginPercentage: decimal.RequireFromString("20.56"),
		},
		MarginAnalysis: entity.MarginAnalysis{
			HealthStatus: entity.HealthWarning, StrategyInsight: entity.InsightOptimalMargin,
			Recommendation: "APPROVE", RiskFactors: []string{"Stock below minimum threshold"},
		},
		Scenarios: []entity.ScenarioComparison{
			{ScenarioName: "No Discount (Full Margin)", NetProfit: decimal.NewFromInt(55), IsProfitable: true},
			{ScenarioName: "Current Discount Applied", NetProfit: decimal.NewFromInt(-2)},
		},
	}

	out, err := NewMarotoReportGenerator().GenerateSimulationReport(context.Background(), sim, simulation.ReportMeta{
		AppName: "ApparelDesk", CurrencySymbol: "₹", GeneratedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
