// Package metrics expone contadores e histogramas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
)

var defaultBuckets = []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Metrics agrupa los colectores sobre un registro propio.
type Metrics struct {
	reg *prometheus.Registry

	SimulationsTotal   *prometheus.CounterVec
	SimulationHealth   *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	CacheLookups       *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New crea y registra los colectores. Incluye métricas del runtime de Go y del proceso.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Simulaciones procesadas por resultado.",
		}, []string{"outcome"}),
		SimulationHealth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_margin_health_total",
			Help:      "Simulaciones exitosas por estado de salud del margen.",
		}, []string{"health"}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_ms",
			Help:      "Duración de una simulación (consultas + motor) en milisegundos.",
			Buckets:   defaultBuckets,
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Consultas a la caché de catálogo por entidad y resultado.",
		}, []string{"entity", "result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Latencia de las peticiones HTTP en milisegundos.",
			Buckets:   defaultBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.SimulationsTotal, m.SimulationHealth, m.SimulationDuration,
		m.CacheLookups, m.HTTPRequests, m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSimulation implementa simulation.Recorder.
func (m *Metrics) ObserveSimulation(outcome string, health entity.HealthStatus, elapsed time.Duration) {
	m.SimulationsTotal.WithLabelValues(outcome).Inc()
	if health != "" {
		m.SimulationHealth.WithLabelValues(string(health)).Inc()
	}
	m.SimulationDuration.Observe(millis(elapsed))
}

// ObserveCacheLookup implementa cache.Observer.
func (m *Metrics) ObserveCacheLookup(entityName string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(entityName, result).Inc()
}

// Middleware registra cada petición con la ruta registrada (no la URL cruda) como etiqueta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(millis(time.Since(start)))
		return err
	}
}

// Handler exposición en formato Prometheus del registro propio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry acceso al registro (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
