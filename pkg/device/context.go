package device

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

type contextKey struct{}

// WithContext stores info in ctx.
func WithContext(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

// FromContext retrieves Info stored by WithContext or Middleware.
func FromContext(ctx context.Context) (Info, bool) {
	if ctx == nil {
		return Info{}, false
	}
	info, ok := ctx.Value(contextKey{}).(Info)
	return info, ok
}

// LogExtractor returns a logger.ContextExtractor adding the device type of
// the request to every log record.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		info, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.DeviceType(string(info.DeviceType)), true
	}
}
