package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/requestid"
)

type handlers struct {
	classifier    *device.Classifier
	metrics       *metrics.Collector
	log           *slog.Logger
	defaultFormat string
}

func newRouter(c *device.Classifier, log *slog.Logger, defaultFormat string) http.Handler {
	h := &handlers{
		classifier:    c,
		metrics:       metrics.New(metrics.DefaultNamespace, c),
		log:           log,
		defaultFormat: defaultFormat,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(device.Middleware(c))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", h.metrics.Handler())
	r.With(h.metrics.Middleware).Get("/detect", h.detect)
	r.Get("/classify", h.classify)
	r.Get("/cache", h.cacheStats)
	r.Delete("/cache", h.clearCache)

	return r
}

// detect reports the caller's own snapshot. Viewport client hints, when the
// browser sends them, fill in the screen.
func (h *handlers) detect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", device.ClientHints)

	info, _ := device.FromContext(r.Context())
	if env := device.EnvironmentFromHeaders(r.Header); env != nil && env.Screen != (device.Screen{}) {
		info.Screen = env.Screen
	}
	h.log.DebugContext(r.Context(), "detect", logger.Signal(info.RawSignal))
	h.write(w, r, http.StatusOK, result{Info: info})
}

func (h *handlers) classify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := []device.Option{device.WithUAString(q.Get("ua"))}
	for name, apply := range map[string]func(bool) device.Option{
		"tablet":         device.WithTablet,
		"feature_detect": device.WithFeatureDetect,
	} {
		if raw := q.Get(name); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "invalid "+name+" parameter", http.StatusBadRequest)
				return
			}
			opts = append(opts, apply(v))
		}
	}

	d := device.NewDetector(h.classifier, opts...)
	info, hybrid := d.Info(), d.Hybrid()
	h.metrics.ObserveDetection(info)
	h.write(w, r, http.StatusOK, result{Info: info, Hybrid: &hybrid})
}

func (h *handlers) cacheStats(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, h.classifier.CacheStats())
}

func (h *handlers) clearCache(w http.ResponseWriter, r *http.Request) {
	h.classifier.ClearCache()
	h.log.InfoContext(r.Context(), "detection cache cleared", logger.Component("http"))
	w.WriteHeader(http.StatusNoContent)
}

// write encodes v in the format named by ?format=, falling back to the
// server default.
func (h *handlers) write(w http.ResponseWriter, r *http.Request, status int, v any) {
	format := r.URL.Query().Get("format")
	if format != "json" && format != "yaml" {
		format = h.defaultFormat
	}

	if format == "json" {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "application/yaml")
	}
	w.WriteHeader(status)

	enc := newEncoder(w, format)
	if err := enc.Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "encode response", logger.Error(err))
		return
	}
	if err := closeEncoder(enc); err != nil {
		h.log.ErrorContext(r.Context(), "encode response", logger.Error(err))
	}
}
