package metrics

import (
	"strconv"
	"time"

	"stay-pricing/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus instruments for the pricing service.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	calculations   *prometheus.CounterVec
	calcDuration   *prometheus.HistogramVec
	resolvedNights *prometheus.CounterVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stay_pricing_http_requests_total",
		Help: "Counts HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stay_pricing_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stay_pricing_calculations_total",
		Help: "Counts completed price calculations by target kind.",
	}, []string{"target"})

	calcDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stay_pricing_calculation_duration_seconds",
		Help:    "Price calculation latency including store reads.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"target"})

	resolvedNights := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stay_pricing_resolved_nights_total",
		Help: "Nights resolved by the calculation service, by status.",
	}, []string{"target", "status"})

	reg.MustRegister(
		httpRequests,
		httpDuration,
		calculations,
		calcDuration,
		resolvedNights,
	)

	return &Metrics{
		httpRequests:   httpRequests,
		httpDuration:   httpDuration,
		calculations:   calculations,
		calcDuration:   calcDuration,
		resolvedNights: resolvedNights,
	}
}

// ObserveCalculation records a finished calculation and the status of every night in it.
func (m *Metrics) ObserveCalculation(kind pricing.TargetKind, summary pricing.Summary, elapsed time.Duration) {
	if m == nil {
		return
	}
	target := kind.String()
	m.calculations.WithLabelValues(target).Inc()
	m.calcDuration.WithLabelValues(target).Observe(elapsed.Seconds())

	counts := map[pricing.PriceType]int{
		pricing.PriceTypeAvailable:  summary.Counts.Available,
		pricing.PriceTypeBestDeal:   summary.Counts.BestDeal,
		pricing.PriceTypePeakSeason: summary.Counts.PeakSeason,
		pricing.PriceTypeSoldOut:    summary.Counts.SoldOut,
	}
	for status, n := range counts {
		if n > 0 {
			m.resolvedNights.WithLabelValues(target, status.String()).Add(float64(n))
		}
	}
}

// ObserveHTTPRequest records a request and its latency.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// GinMiddleware records every request under its route template.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
