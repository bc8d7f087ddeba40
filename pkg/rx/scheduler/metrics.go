package scheduler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts scheduler activity per scheduler name. A nil *Metrics records nothing.
type Metrics struct {
	scheduled *prometheus.CounterVec
	completed *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	panics    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics registers the scheduler collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		scheduled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rxbox",
			Subsystem: "scheduler",
			Name:      "tasks_scheduled_total",
			Help:      "Tasks accepted by a worker.",
		}, []string{"scheduler"}),
		completed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rxbox",
			Subsystem: "scheduler",
			Name:      "tasks_completed_total",
			Help:      "Tasks that returned normally.",
		}, []string{"scheduler"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rxbox",
			Subsystem: "scheduler",
			Name:      "tasks_rejected_total",
			Help:      "Tasks dropped because the scheduler was closed.",
		}, []string{"scheduler"}),
		panics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rxbox",
			Subsystem: "scheduler",
			Name:      "task_panics_total",
			Help:      "Tasks that panicked.",
		}, []string{"scheduler"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rxbox",
			Subsystem: "scheduler",
			Name:      "task_duration_seconds",
			Help:      "Run time of completed tasks.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"scheduler"}),
	}
}

func (m *Metrics) taskScheduled(name string) {
	if m == nil {
		return
	}
	m.scheduled.WithLabelValues(name).Inc()
}

func (m *Metrics) taskCompleted(name string, took time.Duration) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(name).Inc()
	m.duration.WithLabelValues(name).Observe(took.Seconds())
}

func (m *Metrics) taskRejected(name string, n int) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(name).Add(float64(n))
}

func (m *Metrics) taskPanicked(name string) {
	if m == nil {
		return
	}
	m.panics.WithLabelValues(name).Inc()
}
