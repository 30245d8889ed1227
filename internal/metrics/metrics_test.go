package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSolve(t *testing.T) {
	before := testutil.ToFloat64(tourSolvesTotal.WithLabelValues("solved"))

	RecordSolve("solved", 20*time.Millisecond, 12345)

	assert.Equal(t, before+1, testutil.ToFloat64(tourSolvesTotal.WithLabelValues("solved")))
	assert.Equal(t, 12345.0, testutil.ToFloat64(tourDistanceMeters))

	RecordSolve("failed", time.Millisecond, 0)
	assert.Equal(t, 12345.0, testutil.ToFloat64(tourDistanceMeters))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/tour", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/tour", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tour", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/tour", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
