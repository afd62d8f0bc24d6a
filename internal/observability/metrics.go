package observability

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge
	apiReqError prometheus.Counter
	apiReqGood  prometheus.Counter

	sloLatencyThreshold float64

	dbErrors     *prometheus.CounterVec
	invoiceTotal prometheus.Histogram
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("METRICS_ENABLED")))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// Init returns the process-wide collector set, or nil when metrics are
// disabled. All Metrics methods are safe on a nil receiver.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		latencyThreshold := 0.5
		if v := strings.TrimSpace(os.Getenv("SLO_API_LATENCY_THRESHOLD_SECONDS")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				latencyThreshold = f
			}
		}
		instance = New(prometheus.NewRegistry(), latencyThreshold)
		if log != nil {
			log.Info("metrics enabled", "slo_latency_threshold_seconds", latencyThreshold)
		}
	})
	return instance
}

func Current() *Metrics {
	return instance
}

// New registers the chinook collectors on reg. Tests pass their own registry.
func New(reg *prometheus.Registry, latencyThreshold float64) *Metrics {
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chinook_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chinook_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chinook_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		apiReqError: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chinook_api_requests_error_total",
			Help: "Total API requests with 5xx status.",
		}),
		apiReqGood: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chinook_api_requests_good_latency_total",
			Help: "Total API requests under SLO latency threshold.",
		}),
		sloLatencyThreshold: latencyThreshold,
		dbErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chinook_storage_errors_total",
			Help: "Unexpected storage failures surfaced to clients, by route.",
		}, []string{"route"}),
		invoiceTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chinook_invoice_total_amount",
			Help:    "Invoice totals recomputed after a line insert.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
	}
	reg.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiReqError,
		m.apiReqGood,
		m.dbErrors,
		m.invoiceTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the exposition format for this collector set.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
	if isServerErrorStatus(status) {
		m.apiReqError.Inc()
	}
	if m.sloLatencyThreshold > 0 && dur.Seconds() <= m.sloLatencyThreshold {
		m.apiReqGood.Inc()
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncStorageError(route string) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unknown"
	}
	m.dbErrors.WithLabelValues(route).Inc()
}

func (m *Metrics) ObserveInvoiceTotal(total float64) {
	if m == nil {
		return
	}
	m.invoiceTotal.Observe(total)
}

func isServerErrorStatus(status string) bool {
	return len(status) == 3 && status[0] == '5'
}
