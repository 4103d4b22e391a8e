package search

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts scan activity per search.
type Metrics struct {
	windowsScanned     *prometheus.CounterVec
	candidatesRejected *prometheus.CounterVec
	outcomes           *prometheus.CounterVec
}

// NewMetrics creates the search counters and registers them with r.
func NewMetrics(r prometheus.Registerer) *Metrics {
	m := &Metrics{
		windowsScanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billboard_search_windows_scanned_total",
			Help: "Total number of digit windows examined by a search.",
		}, []string{"search"}),
		candidatesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billboard_search_candidates_rejected_total",
			Help: "Total number of windows that met the digit sum but were rejected.",
		}, []string{"search", "reason"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billboard_search_outcomes_total",
			Help: "Total number of finished searches by outcome.",
		}, []string{"search", "outcome"}),
	}
	if r != nil {
		r.MustRegister(m.windowsScanned, m.candidatesRejected, m.outcomes)
	}
	return m
}

func (m *Metrics) scanned(search string) {
	if m == nil {
		return
	}
	m.windowsScanned.WithLabelValues(search).Inc()
}

func (m *Metrics) rejected(search, reason string) {
	if m == nil {
		return
	}
	m.candidatesRejected.WithLabelValues(search, reason).Inc()
}

func (m *Metrics) outcome(search, outcome string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(search, outcome).Inc()
}
