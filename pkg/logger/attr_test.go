package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Component("device"), "component", "device"},
		{logger.Signal("Mozilla/5.0"), "signal", "Mozilla/5.0"},
		{logger.DeviceType("tablet"), "device_type", "tablet"},
		{logger.CacheKey("mobile|1|0|x"), "cache_key", "mobile|1|0|x"},
		{logger.CacheSize(3), "cache_size", int64(3)},
		{logger.Duration(time.Second), "duration", time.Second},
		{logger.Addr("127.0.0.1:8080"), "addr", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.want, tt.attr.Value.Any())
	}
}
