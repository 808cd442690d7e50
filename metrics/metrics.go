// Package metrics exposes Prometheus instrumentation for services that
// embed the validator. The library itself
// stays free of a metrics dependency; callers that want it import this
// package explicitly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry groups the counters and histograms a validation-serving process
// reports. Construct one with NewRegistry and register it with an
// http.Handler via promhttp.HandlerFor, or rely on the default global
// registry by using NewRegistry(prometheus.DefaultRegisterer).
type Registry struct {
	RequestsTotal     *prometheus.CounterVec
	ValidationSeconds *prometheus.HistogramVec
	NoticesTotal      *prometheus.CounterVec
	InFlight          prometheus.Gauge
}

// NewRegistry creates and registers the validator's metrics against reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gtfs_validator",
			Name:      "requests_total",
			Help:      "Total number of validation requests handled, by outcome.",
		}, []string{"outcome"}),

		ValidationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gtfs_validator",
			Name:      "validation_duration_seconds",
			Help:      "Time spent validating a feed, by validation mode.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),

		NoticesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gtfs_validator",
			Name:      "notices_total",
			Help:      "Total notices produced, by severity.",
		}, []string{"severity"}),

		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "gtfs_validator",
			Name:      "requests_in_flight",
			Help:      "Number of validation requests currently being processed.",
		}),
	}
}

// ObserveReport records a completed validation's outcome: request count,
// duration bucketed by mode, and notice counts by severity.
func (r *Registry) ObserveReport(mode string, seconds float64, errors, warnings, infos int) {
	outcome := "ok"
	if errors > 0 {
		outcome = "invalid"
	}
	r.RequestsTotal.WithLabelValues(outcome).Inc()
	r.ValidationSeconds.WithLabelValues(mode).Observe(seconds)
	r.NoticesTotal.WithLabelValues("error").Add(float64(errors))
	r.NoticesTotal.WithLabelValues("warning").Add(float64(warnings))
	r.NoticesTotal.WithLabelValues("info").Add(float64(infos))
}

// ObserveFailure records a request that failed before producing a report
// (bad upload, timeout, internal error).
func (r *Registry) ObserveFailure() {
	r.RequestsTotal.WithLabelValues("error").Inc()
}
