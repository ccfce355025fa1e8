package simulation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/domain"
	"github.com/jhoicas/profit-simulator/internal/domain/profit"
	"github.com/jhoicas/profit-simulator/internal/domain/repository"
	"github.com/jhoicas/profit-simulator/pkg/logger"
)

// UseCase orquesta una simulación: validar, consultar producto, cupón y condición
// de pago, y correr el motor. No escribe nada.
type UseCase struct {
	lookups   repository.Lookups
	engine    *profit.Engine
	validator *Validator
	recorder  Recorder
	reports   ReportGenerator
	appName   string
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. recorder y reports pueden ser nil.
func NewUseCase(
	lookups repository.Lookups,
	engine *profit.Engine,
	recorder Recorder,
	reports ReportGenerator,
	appName string,
	log *logger.Logger,
) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		lookups:   lookups,
		engine:    engine,
		validator: NewValidator(),
		recorder:  recorder,
		reports:   reports,
		appName:   appName,
		log:       log.Component("simulation"),
		now:       time.Now,
	}
}

// Simulate ejecuta la simulación completa.
//
// Retorna:
//   - *domain.ValidationError         si la entrada es inválida.
//   - *domain.NotFoundError            si producto, cupón o condición de pago no existen.
//   - domain.ErrLookupUnavailable      (envuelto) si falla el almacén de datos.
func (uc *UseCase) Simulate(ctx context.Context, in dto.SimulateProfitRequest) (*dto.SimulationResponse, error) {
	start := uc.now()

	out, err := uc.simulate(ctx, in)
	if err != nil {
		outcome := outcomeFor(err)
		uc.recorder.ObserveSimulation(outcome, "", uc.now().Sub(start))
		ev := uc.log.Warn()
		if outcome == OutcomeUnavailable || outcome == OutcomeError {
			ev = uc.log.Error()
		}
		ev.Err(err).Int64("product_id", in.ProductID).Str("outcome", outcome).Msg("simulación rechazada")
		return nil, err
	}

	uc.recorder.ObserveSimulation(OutcomeOK, out.MarginAnalysis.HealthStatus, uc.now().Sub(start))
	uc.log.Debug().
		Str("simulation_id", out.SimulationID).
		Int64("product_id", out.ProductInfo.ProductID).
		Str("net_profit", out.Waterfall.NetProfit.StringFixed(2)).
		Str("health", string(out.MarginAnalysis.HealthStatus)).
		Msg("simulación calculada")
	return out, nil
}

func (uc *UseCase) simulate(ctx context.Context, in dto.SimulateProfitRequest) (*dto.SimulationResponse, error) {
	// ── 1. Validar entrada ────────────────────────────────────────────────────
	req, err := uc.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	// ── 2. Producto activo ────────────────────────────────────────────────────
	product, err := uc.lookups.Products.GetActiveProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("simulación: obtener producto: %w", err)
	}
	if product == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityProduct, Key: strconv.FormatInt(req.ProductID, 10)}
	}

	// ── 3. Cupón (solo si se envió) ───────────────────────────────────────────
	discountPct := decimal.Zero
	if req.HasCoupon() {
		pct, err := uc.lookups.Coupons.GetCouponDiscount(ctx, req.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("simulación: obtener cupón: %w", err)
		}
		if pct == nil {
			return nil, &domain.NotFoundError{Entity: domain.EntityCoupon, Key: req.CouponCode}
		}
		discountPct = *pct
	}

	// ── 4. Condición de pago activa ───────────────────────────────────────────
	term, err := uc.lookups.PaymentTerms.GetActivePaymentTerm(ctx, req.PaymentTermID)
	if err != nil {
		return nil, fmt.Errorf("simulación: obtener condición de pago: %w", err)
	}
	if term == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityPaymentTerm, Key: strconv.FormatInt(req.PaymentTermID, 10)}
	}

	// ── 5. Motor ──────────────────────────────────────────────────────────────
	waterfall := uc.engine.CalculateWaterfall(*product, req.Quantity, discountPct, *term)
	analysis := uc.engine.AnalyzeMargin(waterfall, *product, discountPct)
	scenarios := uc.engine.CompareScenarios(*product, req.Quantity, discountPct, *term)

	var couponApplied *string
	if req.HasCoupon() {
		code := req.CouponCode
		couponApplied = &code
	}

	return &dto.SimulationResponse{
		SimulationID: uuid.New().String(),
		ProductInfo: dto.ProductInfo{
			ProductID:          product.ID,
			ProductName:        product.Name,
			ProductCode:        product.Code,
			CurrentStock:       product.CurrentStock,
			QuantitySimulated:  req.Quantity,
			CouponApplied:      couponApplied,
			DiscountPercentage: discountPct,
			PaymentTerm:        term.Name,
		},
		Waterfall:      waterfall,
		MarginAnalysis: analysis,
		Scenarios:      scenarios[:],
		Timestamp:      uc.now().UTC(),
	}, nil
}

// Report ejecuta la simulación y la entrega como PDF.
// Retorna los mismos errores que Simulate.
func (uc *UseCase) Report(ctx context.Context, in dto.SimulateProfitRequest) (pdfBytes []byte, filename string, err error) {
	if uc.reports == nil {
		return nil, "", errors.New("simulación: generador de reportes no configurado")
	}
	sim, err := uc.Simulate(ctx, in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.reports.GenerateSimulationReport(ctx, sim, ReportMeta{
		AppName:        uc.appName,
		CurrencySymbol: uc.engine.Policy().CurrencySymbol,
		GeneratedAt:    sim.Timestamp,
	})
	if err != nil {
		return nil, "", fmt.Errorf("simulación: generar reporte: %w", err)
	}
	return pdfBytes, fmt.Sprintf("simulacion-%d-%s.pdf", sim.ProductInfo.ProductID, sim.SimulationID[:8]), nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrLookupUnavailable):
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
