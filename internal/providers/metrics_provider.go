package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"sentwatch/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncRunsTotal()
	IncRunFailures()
	IncChangesTotal(profile string)
	IncEventsTotal(kind string)
	IncFetchFailures(stage string)
	IncNotifyFailures()
	ObservePersistenceDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	runsTotal           prometheus.Counter
	runFailures         prometheus.Counter
	changesTotal        *prometheus.CounterVec
	eventsTotal         *prometheus.CounterVec
	fetchFailures       *prometheus.CounterVec
	notifyFailures      prometheus.Counter
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncRunsTotal() {
	m.runsTotal.Inc()
}

func (m *MetricsProvider) IncRunFailures() {
	m.runFailures.Inc()
}

func (m *MetricsProvider) IncChangesTotal(profile string) {
	m.changesTotal.WithLabelValues(profile).Inc()
}

func (m *MetricsProvider) IncEventsTotal(kind string) {
	m.eventsTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) IncFetchFailures(stage string) {
	m.fetchFailures.WithLabelValues(stage).Inc()
}

func (m *MetricsProvider) IncNotifyFailures() {
	m.notifyFailures.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentwatch_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sentwatch_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		runsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentwatch_runs_total",
			Help: "Total number of watch runs started",
		}),

		runFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentwatch_run_failures_total",
			Help: "Total number of watch runs aborted by a fatal fetch failure",
		}),

		changesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentwatch_changes_total",
			Help: "Total number of detected snapshot changes",
		}, []string{"profile"}),

		eventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentwatch_events_total",
			Help: "Total number of derived events",
		}, []string{"kind"}),

		fetchFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sentwatch_fetch_failures_total",
			Help: "Total number of per-profile fetch failures",
		}, []string{"stage"}),

		notifyFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sentwatch_notify_failures_total",
			Help: "Total number of failed notification deliveries",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sentwatch_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                   {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncRunsTotal()                                      {}
func (n *noopMetrics) IncRunFailures()                                    {}
func (n *noopMetrics) IncChangesTotal(_ string)                           {}
func (n *noopMetrics) IncEventsTotal(_ string)                            {}
func (n *noopMetrics) IncFetchFailures(_ string)                          {}
func (n *noopMetrics) IncNotifyFailures()                                 {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)         {}
