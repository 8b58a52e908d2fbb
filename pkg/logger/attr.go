package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Signal records a user-agent signal under the key "signal".
// Absent signals are recorded as an empty string.
func Signal(ua string) slog.Attr {
	return slog.String("signal", ua)
}

// DeviceType records a device class under the key "device_type".
func DeviceType(class string) slog.Attr {
	return slog.String("device_type", class)
}

// CacheKey records a detection cache key under the key "cache_key".
func CacheKey(key string) slog.Attr {
	return slog.String("cache_key", key)
}

// CacheSize records the number of cache entries under the key "cache_size".
func CacheSize(n int) slog.Attr {
	return slog.Int("cache_size", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Addr records a network address under the key "addr".
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}
