package santa

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts draw activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	attempts        prometheus.Counter
	failures        *prometheus.CounterVec
	lists           prometheus.Counter
	exhausted       prometheus.Counter
	attemptsPerList prometheus.Histogram
}

// NewMetrics creates the draw collectors and registers them on reg.
// A nil reg leaves the collectors unregistered. Registering twice on the same
// registerer panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		attempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "secretsanta",
			Name:      "attempts_total",
			Help:      "Cycle construction attempts.",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "secretsanta",
			Name:      "attempt_failures_total",
			Help:      "Discarded attempts by reason.",
		}, []string{"reason"}),
		lists: f.NewCounter(prometheus.CounterOpts{
			Namespace: "secretsanta",
			Name:      "lists_generated_total",
			Help:      "Complete lists produced.",
		}),
		exhausted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "secretsanta",
			Name:      "budget_exhausted_total",
			Help:      "Draws that ran out of attempts.",
		}),
		attemptsPerList: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "secretsanta",
			Name:      "attempts_per_list",
			Help:      "Attempts needed to produce one list.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
	}
}

func (m *Metrics) observeAttempt(f Failure) {
	if m == nil {
		return
	}
	m.attempts.Inc()
	if f != FailNone {
		m.failures.WithLabelValues(f.String()).Inc()
	}
}

func (m *Metrics) observeList(attempts int) {
	if m == nil {
		return
	}
	m.lists.Inc()
	m.attemptsPerList.Observe(float64(attempts))
}

func (m *Metrics) observeExhausted() {
	if m == nil {
		return
	}
	m.exhausted.Inc()
}
