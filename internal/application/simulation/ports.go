package simulation

import (
	"context"
	"time"

	"github.com/jhoicas/profit-simulator/internal/application/dto"
	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

// Resultado de una simulación, usado como etiqueta de métricas.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Recorder registra cada simulación (resultado, salud del margen y duración).
// health es vacío cuando la simulación no llegó a calcularse.
type Recorder interface {
	ObserveSimulation(outcome string, health entity.HealthStatus, elapsed time.Duration)
}

// ReportMeta datos de presentación del reporte.
type ReportMeta struct {
	AppName        string
	CurrencySymbol string
	GeneratedAt    time.Time
}

// ReportGenerator dibuja una simulación como documento (PDF).
type ReportGenerator interface {
	GenerateSimulationReport(ctx context.Context, sim *dto.SimulationResponse, meta ReportMeta) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSimulation(string, entity.HealthStatus, time.Duration) {}
