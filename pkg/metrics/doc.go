// Package metrics exposes detection counters and cache statistics of a
// device.Classifier in the Prometheus format.
//
//	m := metrics.New("", classifier)
//	r.Use(device.Middleware(classifier), m.Middleware)
//	r.Handle("/metrics", m.Handler())
package metrics
