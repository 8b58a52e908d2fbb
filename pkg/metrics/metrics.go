package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// DefaultNamespace prefixes every exported metric name.
const DefaultNamespace = "devicekit"

// Collector exports detection metrics for one Classifier on its own registry.
//
// Metrics:
//   - devicekit_detections_total{device_type}: snapshots served over HTTP
//   - devicekit_cache_hits_total, _misses_total, _expirations_total,
//     _evictions_total: detection cache counters
//   - devicekit_cache_entries: live cache entries
type Collector struct {
	registry   *prometheus.Registry
	detections *prometheus.CounterVec
}

// New creates a Collector reading cache statistics from c at scrape time.
// An empty namespace means DefaultNamespace.
func New(namespace string, c *device.Classifier) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &Collector{
		registry: prometheus.NewRegistry(),
		detections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "detections_total",
				Help:      "Device snapshots served, by device class.",
			},
			[]string{"device_type"},
		),
	}

	m.registry.MustRegister(
		m.detections,
		newCacheCollector(namespace, c),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry metrics are registered on.
func (m *Collector) Registry() *prometheus.Registry { return m.registry }

// ObserveDetection counts one served snapshot.
func (m *Collector) ObserveDetection(info device.Info) {
	m.detections.WithLabelValues(string(info.DeviceType)).Inc()
}

// Middleware counts the snapshot device.Middleware stored for each request.
// It must run inside device.Middleware.
func (m *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := device.FromContext(r.Context()); ok {
			m.ObserveDetection(info)
		}
		next.ServeHTTP(w, r)
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
