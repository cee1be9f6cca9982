package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SavesTotal              *prometheus.CounterVec
	ReconcileDuration       *prometheus.HistogramVec
	ActivityWriteErrors     prometheus.Counter
	NotificationErrors      *prometheus.CounterVec
	CacheInvalidationErrors prometheus.Counter
	HTTPRequestDuration     *prometheus.HistogramVec
}

// NewMetrics creates the catalog metrics on the given registerer.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SavesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "The total number of aggregate saves by entity type and outcome",
		}, []string{"entity", "outcome"}),
		ReconcileDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Time taken to reconcile one child collection",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
		ActivityWriteErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_write_errors_total",
			Help:      "The total number of activity entries that could not be written",
		}),
		NotificationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_errors_total",
			Help:      "The total number of failed notification deliveries",
		}, []string{"channel"}),
		CacheInvalidationErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidation_errors_total",
			Help:      "The total number of failed cache invalidations",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
