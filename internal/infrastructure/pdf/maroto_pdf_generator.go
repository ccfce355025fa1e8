// Package pdf genera el reporte de una simulación de rentabilidad con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: App + título          │  ID simulación + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: nombre, código, stock, cantidad, cupón, término   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CASCADA: Concepto | Monto                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIAGNÓSTICO: salud, estrategia, recomendación, riesgos      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESCENARIOS: Escenario | Desc.% | Utilidad | Margen | ¿Rent.?│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/application/simulation"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 2, Green: 45, Blue: 30} // #022D1E
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// fallbackSymbol se usa cuando la fuente base (Windows-1252) no puede dibujar el símbolo.
const fallbackSymbol = "Rs. "

// ── Generator ─────────────────────────────────────────────────────────────────

var _ simulation.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa simulation.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSimulationReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSimulationReport(
	_ context.Context,
	sim *dto.SimulationResponse,
	meta simulation.ReportMeta,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Simulación de rentabilidad", true).
		WithAuthor(meta.AppName, true).
		Build()

	m := maroto.New(cfg)
	sym := printableSymbol(meta.CurrencySymbol)

	m.AddRows(headerRow(sim, meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRows(sim.ProductInfo)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("CASCADA DE RENTABILIDAD"))
	m.AddRows(waterfallRows(sim.Waterfall, sym)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(analysisRows(sim.MarginAnalysis)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("ESCENARIOS"))
	m.AddRows(scenarioHeaderRow())
	m.AddRows(scenarioRows(sim.Scenarios, sym)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sim *dto.SimulationResponse, meta simulation.ReportMeta) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(meta.AppName, "Profit Simulator"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Simulación de rentabilidad", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SIMULACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sim.SimulationID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+meta.GeneratedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func productRows(info dto.ProductInfo) []core.Row {
	coupon := "—"
	if info.CouponApplied != nil {
		coupon = *info.CouponApplied
	}
	return []core.Row{
		sectionTitle("PRODUCTO"),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%s)", info.ProductName, info.ProductCode), props.Text{
				Style: fontstyle.Bold, Size: 10,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Stock actual: %s   |   Cantidad simulada: %s   |   Cupón: %s (%s%%)   |   Condición de pago: %s",
				info.CurrentStock.String(),
				info.QuantitySimulated.String(),
				coupon,
				info.DiscountPercentage.StringFixed(2),
				info.PaymentTerm,
			), props.Text{Size: 8, Color: colorGray}),
		)),
	}
}

func waterfallRows(w entity.MoneyWaterfall, sym string) []core.Row {
	lines := []struct {
		label string
		value decimal.Decimal
		total bool
	}{
		{"Ingreso bruto", w.GrossRevenue, false},
		{"(-) Descuento", w.DiscountAmount, false},
		{"Ingreso neto", w.NetRevenue, true},
		{"(-) Costo de ventas", w.COGS, false},
		{"(-) Impuesto sobre ventas", w.SalesTax, false},
		{"(-) Descuento por pronto pago", w.EarlyPaymentDiscount, false},
		{"(-) Gastos operativos", w.OperationalFees, false},
		{"Costos totales", w.TotalCosts, true},
		{"UTILIDAD NETA", w.NetProfit, true},
	}
	rows := make([]core.Row, 0, len(lines)+1)
	for _, l := range lines {
		style := fontstyle.Normal
		if l.total {
			style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(3),
			col.New(4).Add(text.New(l.label, props.Text{Style: style, Size: 9})),
			col.New(3).Add(text.New(sym+formatAmount(l.value), props.Text{Style: style, Size: 9, Align: align.Right})),
			col.New(2),
		))
	}
	rows = append(rows, row.New(7).Add(
		col.New(3),
		col.New(4).Add(text.New("Margen de utilidad", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary})),
		col.New(3).Add(text.New(w.ProfitMarginPercentage.StringFixed(2)+"%", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary,
		})),
		col.New(2),
	))
	return rows
}

func analysisRows(a entity.MarginAnalysis) []core.Row {
	rows := []core.Row{
		sectionTitle("DIAGNÓSTICO DEL MARGEN"),
		row.New(7).Add(
			col.New(4).Add(text.New("Salud: "+strings.ToUpper(string(a.HealthStatus)), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: healthColor(a.HealthStatus),
			})),
			col.New(8).Add(text.New("Estrategia: "+string(a.StrategyInsight), props.Text{Size: 9, Top: 1})),
		),
		row.New(12).Add(col.New(12).Add(
			text.New(a.Recommendation, props.Text{Size: 8.5}),
		)),
	}
	if len(a.RiskFactors) == 0 {
		return rows
	}
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New("Factores de riesgo:", props.Text{Style: fontstyle.Bold, Size: 8}),
	)))
	for _, r := range a.RiskFactors {
		rows = append(rows, row.New(4.5).Add(col.New(12).Add(
			text.New("• "+r, props.Text{Size: 8, Left: 3, Color: colorRed}),
		)))
	}
	return rows
}

func scenarioHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Escenario", 5, align.Left),
		h("Desc. %", 2, align.Right),
		h("Utilidad", 2, align.Right),
		h("Margen", 2, align.Right),
		h("Rentable", 1, align.Center),
	)
}

func scenarioRows(scenarios []entity.ScenarioComparison, sym string) []core.Row {
	result := make([]core.Row, 0, len(scenarios))
	for _, s := range scenarios {
		profitable, color := "No", colorRed
		if s.IsProfitable {
			profitable, color = "Sí", colorGreen
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(s.ScenarioName, props.Text{Size: 8})),
			col.New(2).Add(text.New(s.DiscountPercentage.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(sym+formatAmount(s.NetProfit), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(s.ProfitMargin.StringFixed(2)+"%", props.Text{Size: 8, Align: align.Right})),
			col.New(1).Add(text.New(profitable, props.Text{Size: 8, Align: align.Center, Color: color})),
		))
	}
	return result
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func healthColor(h entity.HealthStatus) *props.Color {
	switch h {
	case entity.HealthCritical:
		return colorRed
	case entity.HealthWarning:
		return colorAmber
	default:
		return colorGreen
	}
}

// printableSymbol devuelve el símbolo si la fuente base puede codificarlo.
func printableSymbol(sym string) string {
	if sym == "" {
		return ""
	}
	if _, err := charmap.Windows1252.NewEncoder().String(sym); err != nil {
		return fallbackSymbol
	}
	return sym
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount fija 2 decimales e inserta comas de miles.
// Ej: 1234567.891 → "1,234,567.89", -37 → "-37.00"
func formatAmount(v decimal.Decimal) string {
	s := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	n := len(intPart)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
