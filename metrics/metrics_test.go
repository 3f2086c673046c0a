package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestConverterMetrics(t *testing.T) {
	m := NewConverterMetrics()

	m.ObserveFetch("ok", time.Now())
	m.ObserveFetch("ok", time.Now())
	m.ObserveFetch("network", time.Now())
	m.ObserveConversion("rate_available")
	m.SupersededTotal.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateFetchTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateFetchTotal.WithLabelValues("network")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("rate_available")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SupersededTotal))
}

func TestNewConverterMetricsIndependentRegistries(t *testing.T) {
	a := NewConverterMetrics()
	b := NewConverterMetrics()

	a.ObserveConversion("amount_absent")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ConversionsTotal.WithLabelValues("amount_absent")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ConversionsTotal.WithLabelValues("amount_absent")))
}
