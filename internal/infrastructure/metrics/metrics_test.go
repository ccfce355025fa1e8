package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/profit-simulator/internal/domain/entity"
	"github.com/jhoicas/profit-simulator/internal/infrastructure/metrics"
)

func TestMetrics_ObserveSimulation(t *testing.T) {
	m := metrics.New("profitsim")

	m.ObserveSimulation("ok", entity.HealthHealthy, 3*time.Millisecond)
	m.ObserveSimulation("ok", entity.HealthCritical, time.Millisecond)
	m.ObserveSimulation("not_found", "", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulationHealth.WithLabelValues("healthy")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SimulationHealth), "sin etiqueta vacía")
	assert.Equal(t, 1, testutil.CollectAndCount(m.SimulationDuration))
}

func TestMetrics_ObserveCacheLookup(t *testing.T) {
	m := metrics.New("profitsim")
	m.ObserveCacheLookup("product", true)
	m.ObserveCacheLookup("product", false)
	m.ObserveCacheLookup("product", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("product", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("product", "miss")))
}

func TestMetrics_MiddlewareUsaLaRutaRegistrada(t *testing.T) {
	m := metrics.New("profitsim")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/items/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/items/:id", "204")))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New("profitsim")
	m.ObserveSimulation("ok", entity.HealthWarning, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `profitsim_simulations_total{outcome="ok"} 1`))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}
