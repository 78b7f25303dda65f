package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking and reminder flows.
// All observers are safe to call on a nil receiver.
type BookingMetrics struct {
	committed    prometheus.Counter
	rejections   *prometheus.CounterVec
	reminders    *prometheus.CounterVec
	openSessions prometheus.Gauge
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		committed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bloodtest",
			Subsystem: "booking",
			Name:      "committed_total",
			Help:      "Bookings persisted",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloodtest",
			Subsystem: "booking",
			Name:      "rejections_total",
			Help:      "Booking inputs or commits that were rejected",
		}, []string{"reason"}),
		reminders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bloodtest",
			Subsystem: "reminder",
			Name:      "dispatched_total",
			Help:      "Reminder notifications by kind and delivery status",
		}, []string{"kind", "status"}),
		openSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bloodtest",
			Subsystem: "booking",
			Name:      "open_sessions",
			Help:      "Booking conversations currently open",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.committed, m.rejections, m.reminders, m.openSessions)
	return m
}

func (m *BookingMetrics) ObserveCommitted() {
	if m == nil {
		return
	}
	m.committed.Inc()
}

func (m *BookingMetrics) ObserveRejection(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *BookingMetrics) ObserveReminder(kind string, err error) {
	if m == nil {
		return
	}
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.reminders.WithLabelValues(kind, status).Inc()
}

func (m *BookingMetrics) SetOpenSessions(n int) {
	if m == nil {
		return
	}
	m.openSessions.Set(float64(n))
}
