package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConverterMetrics holds collectors of the converter
type ConverterMetrics struct {
	Registry *prometheus.Registry

	// Rate lookups by result (ok, network, malformed_response, service_rejected)
	RateFetchTotal    *prometheus.CounterVec
	RateFetchDuration prometheus.Histogram

	// Rendered conversions by output state
	ConversionsTotal *prometheus.CounterVec

	// Evaluations cancelled by a newer input change of the same session
	SupersededTotal prometheus.Counter
}

// NewConverterMetrics registers collectors on a fresh registry
func NewConverterMetrics() *ConverterMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &ConverterMetrics{
		Registry: reg,

		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "converter_rate_fetch_total",
				Help: "Exchange rate lookups by result",
			},
			[]string{"result"},
		),

		RateFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "converter_rate_fetch_duration_seconds",
				Help:    "Duration of exchange rate lookups",
				Buckets: prometheus.DefBuckets,
			},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "converter_conversions_total",
				Help: "Evaluated conversions by output state",
			},
			[]string{"state"},
		),

		SupersededTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "converter_superseded_total",
				Help: "Conversions cancelled by a newer input change of the same session",
			},
		),
	}
}

// ObserveFetch records a rate lookup
func (m *ConverterMetrics) ObserveFetch(result string, started time.Time) {
	m.RateFetchTotal.WithLabelValues(result).Inc()
	m.RateFetchDuration.Observe(time.Since(started).Seconds())
}

// ObserveConversion records an evaluated conversion
func (m *ConverterMetrics) ObserveConversion(state string) {
	m.ConversionsTotal.WithLabelValues(state).Inc()
}
