package daemon

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	reg         *prometheus.Registry
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	evaluations *prometheus.CounterVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "battgen",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "battgen",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "battgen",
			Name:      "evaluations_total",
			Help:      "Successful module and battery evaluations.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.requests, m.latency, m.evaluations)
	return m
}

func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			m.latency.WithLabelValues(c.Request.Method, route(c)).Observe(v)
		}))
		c.Next()
		timer.ObserveDuration()
		m.requests.WithLabelValues(c.Request.Method, route(c), strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// evaluated counts calls of h that end without an error.
func (m *metrics) evaluated(kind string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c)
		if len(c.Errors) == 0 {
			m.evaluations.WithLabelValues(kind).Inc()
		}
	}
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}

// route keeps label cardinality bounded for paths no route matched.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
