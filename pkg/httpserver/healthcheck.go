package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// HealthCheckHandler answers liveness probes with "ALIVE" when no checks are
// given, and readiness probes with "READY" or a 503 "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body := "ALIVE"
		if len(checks) > 0 {
			body = "READY"
		}
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}
