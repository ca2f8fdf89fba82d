package libtrigger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements Metrics on top of prometheus vectors labelled by event name.
// It is a prometheus.Collector, so it can be registered as a whole. The listeners gauge drops
// the series of an event once no registry sharing the collector has listeners for it.
type PrometheusMetrics struct {
	fires      *prometheus.CounterVec
	deliveries *prometheus.CounterVec
	deferred   *prometheus.CounterVec
	listeners  *prometheus.GaugeVec

	mutex  sync.Mutex
	counts map[string]int
}

// NewPrometheusMetrics creates the collector. Every metric name is prefixed with namespace.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	return &PrometheusMetrics{
		counts: make(map[string]int),
		fires: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fires_total",
				Help:      "Total number of events fired with at least one listener.",
			},
			[]string{"event"},
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_total",
				Help:      "Total number of listener invocations.",
			},
			[]string{"event"},
		),
		deferred: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deferred_fires_total",
				Help:      "Total number of firings handed to a scheduler.",
			},
			[]string{"event"},
		),
		listeners: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "listeners",
				Help:      "Number of listeners currently registered.",
			},
			[]string{"event"},
		),
	}
}

func (m *PrometheusMetrics) ListenerAdded(event string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.counts[event]++
	m.listeners.WithLabelValues(event).Set(float64(m.counts[event]))
}

func (m *PrometheusMetrics) ListenerRemoved(event string, n int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.counts[event] -= n
	if m.counts[event] <= 0 {
		delete(m.counts, event)
		m.listeners.DeleteLabelValues(event)
		return
	}
	m.listeners.WithLabelValues(event).Set(float64(m.counts[event]))
}

func (m *PrometheusMetrics) Fired(event string, listeners int) {
	m.fires.WithLabelValues(event).Inc()
	m.deliveries.WithLabelValues(event).Add(float64(listeners))
}

func (m *PrometheusMetrics) Deferred(event string) {
	m.deferred.WithLabelValues(event).Inc()
}

// Describe implements prometheus.Collector.
func (m *PrometheusMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.fires.Describe(ch)
	m.deliveries.Describe(ch)
	m.deferred.Describe(ch)
	m.listeners.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *PrometheusMetrics) Collect(ch chan<- prometheus.Metric) {
	m.fires.Collect(ch)
	m.deliveries.Collect(ch)
	m.deferred.Collect(ch)
	m.listeners.Collect(ch)
}
