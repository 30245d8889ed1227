// Package metrics exposes Prometheus collectors for HTTP traffic and tour solves.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 60, 300, 900},
		},
		[]string{"method", "path"},
	)

	tourSolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_solves_total",
			Help: "Total number of tour solves by outcome",
		},
		[]string{"status"},
	)

	tourSolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tour_solve_duration_seconds",
			Help:    "Wall time spent building the matrix and searching",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		},
	)

	tourDistanceMeters = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tour_last_distance_meters",
			Help: "Total distance of the most recent solved tour",
		},
	)
)

// Middleware records request counts and latencies per route.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" {
			ctx.Next()
			return
		}

		if path == "" {
			path = "unmatched"
		}

		start := time.Now()

		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// RecordSolve records the outcome of one tour solve.
func RecordSolve(status string, d time.Duration, distanceMeters int64) {
	tourSolvesTotal.WithLabelValues(status).Inc()
	tourSolveDuration.Observe(d.Seconds())
	if status == "solved" {
		tourDistanceMeters.Set(float64(distanceMeters))
	}
}
