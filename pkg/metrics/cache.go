package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// cacheCollector reports one CacheStats read per scrape as const metrics.
type cacheCollector struct {
	classifier *device.Classifier

	hits        *prometheus.Desc
	misses      *prometheus.Desc
	expirations *prometheus.Desc
	evictions   *prometheus.Desc
	entries     *prometheus.Desc
}

func newCacheCollector(namespace string, c *device.Classifier) *cacheCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "cache", name), help, nil, nil)
	}
	return &cacheCollector{
		classifier:  c,
		hits:        desc("hits_total", "Detection cache lookups answered from the cache."),
		misses:      desc("misses_total", "Detection cache lookups that ran the pattern engine."),
		expirations: desc("expirations_total", "Detection cache entries dropped after their TTL."),
		evictions:   desc("evictions_total", "Detection cache entries displaced by the size bound."),
		entries:     desc("entries", "Live detection cache entries."),
	}
}

func (cc *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.hits
	ch <- cc.misses
	ch <- cc.expirations
	ch <- cc.evictions
	ch <- cc.entries
}

func (cc *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	st := cc.classifier.CacheStats()
	ch <- prometheus.MustNewConstMetric(cc.hits, prometheus.CounterValue, float64(st.Hits))
	ch <- prometheus.MustNewConstMetric(cc.misses, prometheus.CounterValue, float64(st.Misses))
	ch <- prometheus.MustNewConstMetric(cc.expirations, prometheus.CounterValue, float64(st.Expirations))
	ch <- prometheus.MustNewConstMetric(cc.evictions, prometheus.CounterValue, float64(st.Evictions))
	ch <- prometheus.MustNewConstMetric(cc.entries, prometheus.GaugeValue, float64(st.Size))
}
