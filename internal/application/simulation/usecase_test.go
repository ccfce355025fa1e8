package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/domain"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/domain/profit"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/memory"
)

// ── dobles ────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type observation struct {
	outcome string
	health  entity.HealthStatus
}

type spyRecorder struct{ calls []observation }

func (r *spyRecorder) ObserveSimulation(outcome string, health entity.HealthStatus, _ time.Duration) {
	r.calls = append(r.calls, observation{outcome, health})
}

type brokenLookup struct{}

func (brokenLookup) GetActiveProduct(context.Context, int64) (*entity.Product, error) {
	return nil, fmt.Errorf("postgres: %w", domain.ErrLookupUnavailable)
}

type fakeReports struct {
	got  *dto.SimulationResponse
	meta ReportMeta
	err  error
}

func (f *fakeReports) GenerateSimulationReport(_ context.Context, sim *dto.SimulationResponse, meta ReportMeta) ([]byte, error) {
	f.got, f.meta = sim, meta
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func seededStore() *memory.Store {
	s := memory.NewStore()
	s.SetClock(func() time.Time { return testNow })
	s.AddProduct(entity.Product{
		ID: 1, Name: "Camisa Oxford", Code: "SH-001",
		SalesPrice: decimal.NewFromInt(100), PurchasePrice: decimal.NewFromInt(60),
		SalesTaxPercentage: decimal.NewFromInt(10),
		CurrentStock:       decimal.NewFromInt(20), MinimumStock: decimal.NewFromInt(5),
		IsActive: true,
	})
	s.AddPaymentTerm(entity.PaymentTerm{ID: 3, Name: "Net 30", NetDays: 30, ComputationBasis: entity.BasisBaseAmount, IsActive: true})
	s.AddOffer(entity.DiscountOffer{
		ID: 1, DiscountPercentage: decimal.NewFromInt(10),
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	s.AddOffer(entity.DiscountOffer{
		ID: 2, DiscountPercentage: decimal.NewFromInt(25),
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	s.AddCoupon(entity.Coupon{ID: 1, Code: "SAVE10", OfferID: 1, Status: entity.CouponUnused, IsActive: true})
	s.AddCoupon(entity.Coupon{ID: 2, Code: "OLD25", OfferID: 2, Status: entity.CouponUnused, IsActive: true})
	return s
}

func newTestUseCase(lookups repository.Lookups, rec Recorder, reports ReportGenerator) *UseCase {
	uc := NewUseCase(lookups, profit.NewEngine(profit.DefaultPolicy()), rec, reports, "ApparelDesk", nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func strPtr(s string) *string { return &s }

func rawQty(s string) json.RawMessage { return json.RawMessage(s) }

func req(coupon *string, qty json.RawMessage) dto.SimulateProfitRequest {
	return dto.SimulateProfitRequest{ProductID: 1, CouponCode: coupon, PaymentTermID: 3, Quantity: qty}
}

// ── Simulate ──────────────────────────────────────────────────────────────────

func TestSimulate_EjemploCompleto(t *testing.T) {
	rec := &spyRecorder{}
	uc := newTestUseCase(seededStore().Lookups(), rec, nil)

	out, err := uc.Simulate(context.Background(), req(strPtr("SAVE10"), rawQty("2")))
	require.NoError(t, err)

	assert.NotEmpty(t, out.SimulationID)
	assert.Equal(t, testNow, out.Timestamp)
	assert.Equal(t, int64(1), out.ProductInfo.ProductID)
	assert.Equal(t, "Camisa Oxford", out.ProductInfo.ProductName)
	assert.Equal(t, "SH-001", out.ProductInfo.ProductCode)
	assert.Equal(t, "Net 30", out.ProductInfo.PaymentTerm)
	require.NotNil(t, out.ProductInfo.CouponApplied)
	assert.Equal(t, "SAVE10", *out.ProductInfo.CouponApplied)
	assert.True(t, out.ProductInfo.DiscountPercentage.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.ProductInfo.QuantitySimulated.Equal(decimal.NewFromInt(2)))

	assert.True(t, out.Waterfall.NetProfit.Equal(decimal.RequireFromString("37.00")))
	assert.True(t, out.Waterfall.ProfitMarginPercentage.Equal(decimal.RequireFromString("20.56")))
	assert.Equal(t, entity.HealthHealthy, out.MarginAnalysis.HealthStatus)
	assert.Equal(t, entity.InsightPremiumPricing, out.MarginAnalysis.StrategyInsight)
	require.Len(t, out.Scenarios, 3)
	assert.True(t, out.Scenarios[2].DiscountPercentage.Equal(decimal.RequireFromString("30.55")))

	assert.Equal(t, []observation{{OutcomeOK, entity.HealthHealthy}}, rec.calls)
}

func TestSimulate_SinCuponNiCantidad(t *testing.T) {
	uc := newTestUseCase(seededStore().Lookups(), nil, nil)

	out, err := uc.Simulate(context.Background(), req(strPtr("   "), nil))
	require.NoError(t, err)

	assert.Nil(t, out.ProductInfo.CouponApplied)
	assert.True(t, out.ProductInfo.DiscountPercentage.IsZero())
	assert.True(t, out.ProductInfo.QuantitySimulated.Equal(decimal.NewFromInt(1)), "cantidad por defecto")
	assert.True(t, out.Waterfall.GrossRevenue.Equal(decimal.NewFromInt(100)))
}

func TestSimulate_CuponVencidoEsNoEncontrado(t *testing.T) {
	rec := &spyRecorder{}
	uc := newTestUseCase(seededStore().Lookups(), rec, nil)

	_, err := uc.Simulate(context.Background(), req(strPtr("OLD25"), nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.EntityCoupon, nf.Entity)
	assert.Equal(t, "OLD25", nf.Key)
	assert.Equal(t, []observation{{OutcomeNotFound, ""}}, rec.calls)
}

func TestSimulate_EntidadesInexistentes(t *testing.T) {
	uc := newTestUseCase(seededStore().Lookups(), nil, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		in     dto.SimulateProfitRequest
		entity string
	}{
		{"producto", dto.SimulateProfitRequest{ProductID: 404, PaymentTermID: 3}, domain.EntityProduct},
		{"cupón", dto.SimulateProfitRequest{ProductID: 1, PaymentTermID: 3, CouponCode: strPtr("NOPE")}, domain.EntityCoupon},
		{"condición de pago", dto.SimulateProfitRequest{ProductID: 1, PaymentTermID: 404}, domain.EntityPaymentTerm},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Simulate(ctx, c.in)
			var nf *domain.NotFoundError
			require.True(t, errors.As(err, &nf), "err = %v", err)
			assert.Equal(t, c.entity, nf.Entity)
		})
	}
}

func TestSimulate_ValidacionListaTodosLosCampos(t *testing.T) {
	rec := &spyRecorder{}
	uc := newTestUseCase(seededStore().Lookups(), rec, nil)

	_, err := uc.Simulate(context.Background(), dto.SimulateProfitRequest{ProductID: 0, PaymentTermID: -1, Quantity: rawQty("-3")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"product_id", "payment_term_id", "quantity"}, fields)
	assert.Equal(t, []observation{{OutcomeInvalid, ""}}, rec.calls)
}

func TestSimulate_AlmacenNoDisponible(t *testing.T) {
	store := seededStore()
	lookups := store.Lookups()
	lookups.Products = brokenLookup{}
	rec := &spyRecorder{}
	uc := newTestUseCase(lookups, rec, nil)

	_, err := uc.Simulate(context.Background(), req(nil, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLookupUnavailable))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, []observation{{OutcomeUnavailable, ""}}, rec.calls)
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate_CantidadSeCuantizaATresDecimales(t *testing.T) {
	v := NewValidator()

	got, err := v.Validate(req(nil, rawQty("1.23456")))
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.RequireFromString("1.235")))

	_, err = v.Validate(req(nil, rawQty("0.0004")))
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "cuantiza a 0")
	assert.Equal(t, "quantity", verr.Fields[0].Field)

	got, err = v.Validate(req(nil, rawQty("0.0005")))
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.RequireFromString("0.001")))
}

func TestValidate_CantidadComoNumeroOTexto(t *testing.T) {
	v := NewValidator()

	for raw, want := range map[string]string{`2`: "2", `"2.5"`: "2.5", ` 3 `: "3", `null`: "1", `1e1`: "10"} {
		got, err := v.Validate(req(nil, rawQty(raw)))
		require.NoError(t, err, raw)
		assert.True(t, got.Quantity.Equal(decimal.RequireFromString(want)), "%s -> %s", raw, got.Quantity)
	}
}

func TestValidate_CantidadNoNumericaNombraElCampo(t *testing.T) {
	v := NewValidator()

	for _, raw := range []string{`"abc"`, `"NaN"`, `"Infinity"`, `true`, `""`, `{}`} {
		_, err := v.Validate(req(nil, rawQty(raw)))
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), raw)
		require.Len(t, verr.Fields, 1, raw)
		assert.Equal(t, "quantity", verr.Fields[0].Field, raw)
		assert.Equal(t, "debe ser un número finito", verr.Fields[0].Message, raw)
	}
}

func TestTypeErrors_NombraCadaCampoConTipoIncorrecto(t *testing.T) {
	body := []byte(`{"product_id": "x", "payment_term_id": 1.5, "coupon_code": 10, "quantity": "NaN"}`)
	var in dto.SimulateProfitRequest
	decodeErr := json.Unmarshal(body, &in)
	require.Error(t, decodeErr)

	err := TypeErrors(body, decodeErr)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"product_id", "payment_term_id", "coupon_code", "quantity"}, fields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTypeErrors_JSONMalFormadoNoEsValidacion(t *testing.T) {
	body := []byte(`{"product_id": `)
	var in dto.SimulateProfitRequest
	decodeErr := json.Unmarshal(body, &in)
	require.Error(t, decodeErr)

	err := TypeErrors(body, decodeErr)
	assert.Equal(t, decodeErr, err)
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestValidate_CuponSeRecortaSinCambiarMayusculas(t *testing.T) {
	got, err := NewValidator().Validate(req(strPtr("  Save10 "), nil))
	require.NoError(t, err)
	assert.Equal(t, "Save10", got.CouponCode)
	assert.True(t, got.HasCoupon())
}

// ── Report ────────────────────────────────────────────────────────────────────

func TestReport_GeneraPDFConNombre(t *testing.T) {
	reports := &fakeReports{}
	uc := newTestUseCase(seededStore().Lookups(), nil, reports)

	pdf, filename, err := uc.Report(context.Background(), req(strPtr("SAVE10"), rawQty("2")))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.True(t, strings.HasPrefix(filename, "simulacion-1-"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))

	require.NotNil(t, reports.got)
	assert.Equal(t, "ApparelDesk", reports.meta.AppName)
	assert.Equal(t, "₹", reports.meta.CurrencySymbol)
	assert.Equal(t, testNow, reports.meta.GeneratedAt)
}

func TestReport_PropagaErrores(t *testing.T) {
	reports := &fakeReports{err: errors.New("fuente no disponible")}
	uc := newTestUseCase(seededStore().Lookups(), nil, reports)

	_, _, err := uc.Report(context.Background(), req(nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generar reporte")

	reports.got = nil
	_, _, err = uc.Report(context.Background(), dto.SimulateProfitRequest{ProductID: 404, PaymentTermID: 3})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, reports.got, "no se genera reporte si la simulación falla")
}

func TestReport_SinGenerador(t *testing.T) {
	uc := newTestUseCase(seededStore().Lookups(), nil, nil)
	_, _, err := uc.Report(context.Background(), req(nil, nil))
	assert.Error(t, err)
}
