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
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	ModuleAccessCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_module_access_total",
			Help: "Module access checks by resulting status",
		},
		[]string{"status"},
	)

	ScheduleBuildCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_schedule_builds_total",
			Help: "Schedules built, by where the completed modules came from",
		},
		[]string{"source"},
	)

	EvaluationResultCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_evaluation_results_total",
			Help: "Recorded evaluation results by outcome",
		},
		[]string{"evaluation", "passed"},
	)

	CalendarModelDiscrepancies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "calendar_model_discrepancies",
			Help: "Modules whose evaluation-link dates disagree with the program calendar",
		},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			ModuleAccessCounter,
			ScheduleBuildCounter,
			EvaluationResultCounter,
			CalendarModelDiscrepancies,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
