package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusMetrics struct {
	vectors *vectors
	labels  Labels
}

type vectors struct {
	registerer prometheus.Registerer
	namespace  string

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

func NewPrometheus(registerer prometheus.Registerer, namespace string) Metrics {
	return prometheusMetrics{
		vectors: &vectors{
			registerer: registerer,
			namespace:  namespace,
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: nil,
	}
}

func NewHTTPHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for k, v := range m.labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	m.labels = merged
	return m
}

func (m prometheusMetrics) WithLabel(name, value string) Metrics {
	return m.With(Labels{name: value})
}

// Increment and Duration drop the sample when the label set differs from the one the metric was registered with.
func (m prometheusMetrics) Increment(key string) {
	counter, err := m.vectors.counter(key, labelNames(m.labels)).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	counter.Inc()
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	observer, err := m.vectors.histogram(key, labelNames(m.labels)).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	observer.Observe(duration.Seconds())
}

func (v *vectors) counter(name string, labels []string) *prometheus.CounterVec {
	v.mu.Lock()
	defer v.mu.Unlock()

	if counter, ok := v.counters[name]; ok {
		return counter
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: v.namespace,
		Name:      name,
	}, labels)
	v.registerer.MustRegister(counter)
	v.counters[name] = counter

	return counter
}

func (v *vectors) histogram(name string, labels []string) *prometheus.HistogramVec {
	v.mu.Lock()
	defer v.mu.Unlock()

	if histogram, ok := v.histograms[name]; ok {
		return histogram
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: v.namespace,
		Name:      name,
		Buckets:   prometheus.DefBuckets,
	}, labels)
	v.registerer.MustRegister(histogram)
	v.histograms[name] = histogram

	return histogram
}

func labelNames(labels Labels) []string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
