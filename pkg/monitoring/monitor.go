package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	// ClockRenders 按结果统计渲染次数：ok / invalid / no_surface
	ClockRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clock_renders_total",
			Help: "Total number of clock render passes",
		},
		[]string{"result"},
	)

	ClockWedges = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "clock_render_wedges",
			Help:    "Number of wedges drawn per render pass",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	ClockCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clock_cache_requests_total",
			Help: "Rendered SVG cache lookups",
		},
		[]string{"result"},
	)

	ClockExports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clock_exports_total",
			Help: "Clock exports by storage backend and outcome",
		},
		[]string{"storage", "result"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, ClockRenders, ClockWedges, ClockCache, ClockExports)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
