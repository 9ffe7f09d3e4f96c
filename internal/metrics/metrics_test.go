package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveReport("daily", time.Second)
		m.RecordsFetched("toy_logs", 3)
		m.SourceError("toy_logs")
		m.SectionDegraded("weekly")
	})
}

func TestCounters(t *testing.T) {
	m := New()

	m.SourceError("toy_logs")
	m.SourceError("toy_logs")
	m.SourceError("sentiment_logs")
	m.RecordsFetched("toy_logs", 5)
	m.SectionDegraded("weekday")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sourceErrors.WithLabelValues("toy_logs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceErrors.WithLabelValues("sentiment_logs")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.recordsFetched.WithLabelValues("toy_logs")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedSections.WithLabelValues("weekday")))
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/devices/:device_id/reports/daily", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, dev := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/devices/"+dev+"/reports/daily", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/devices/:device_id/reports/daily", "200"))
	assert.Equal(t, 2.0, got)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	assert.Contains(t, string(body), "companion_http_requests_total")
}
