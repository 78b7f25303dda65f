package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetrics_Observers(t *testing.T) {
	m := NewBookingMetrics(prometheus.NewRegistry())

	m.ObserveCommitted()
	m.ObserveCommitted()
	m.ObserveRejection("slot_full")
	m.ObserveReminder("same_day", nil)
	m.ObserveReminder("same_day", errors.New("blocked"))
	m.SetOpenSessions(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.committed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("slot_full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminders.WithLabelValues("same_day", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reminders.WithLabelValues("same_day", "failed")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.openSessions))
}

func TestBookingMetrics_NilSafe(t *testing.T) {
	var m *BookingMetrics

	assert.NotPanics(t, func() {
		m.ObserveCommitted()
		m.ObserveRejection("x")
		m.ObserveReminder("day_before", nil)
		m.SetOpenSessions(1)
	})
}
