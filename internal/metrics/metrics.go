// Package metrics exports Prometheus metrics for CMS reads.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "site"

// Outcome labels for CMSRequests
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics owns a private registry. Methods are no-ops on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	CMSRequests  *prometheus.CounterVec
	CMSDuration  *prometheus.HistogramVec
	CacheLookups *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CMSRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cms_requests_total",
			Help:      "CMS entry collection requests by content type and outcome.",
		}, []string{"content_type", "outcome"}),
		CMSDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cms_request_duration_seconds",
			Help:      "Latency of CMS entry collection requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"content_type"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cms_cache_lookups_total",
			Help:      "Content cache lookups by content type and result.",
		}, []string{"content_type", "result"}),
	}
}

func (m *Metrics) ObserveFetch(contentType string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.CMSRequests.WithLabelValues(contentType, outcome).Inc()
	m.CMSDuration.WithLabelValues(contentType).Observe(d.Seconds())
}

func (m *Metrics) ObserveCache(contentType string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(contentType, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
