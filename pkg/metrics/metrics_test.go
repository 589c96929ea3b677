package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncBooking(t *testing.T) {
	m := NewWithRegisterer("turnos", prometheus.NewRegistry())

	m.IncBooking(OutcomeCreated)
	m.IncBooking(OutcomeCreated)
	m.IncBooking(OutcomeConflict)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues(OutcomeCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues(OutcomeConflict)))
}

func TestIncBooking_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.IncBooking(OutcomeError) })
}
