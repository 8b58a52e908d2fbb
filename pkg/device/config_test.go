package device_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := device.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, device.Config{
			CacheTTL:        5 * time.Minute,
			CacheMaxEntries: 10000,
		}, cfg)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("DEVICE_CACHE_TTL", "30s")
		t.Setenv("DEVICE_CACHE_MAX_ENTRIES", "16")
		t.Setenv("DEVICE_TABLET", "true")
		t.Setenv("DEVICE_FEATURE_DETECT", "true")

		cfg, err := device.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.CacheTTL)
		assert.Equal(t, 16, cfg.CacheMaxEntries)
		assert.True(t, cfg.Tablet)
		assert.True(t, cfg.FeatureDetect)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("DEVICE_CACHE_TTL", "soon")

		_, err := device.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, device.ErrParsingConfig)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("DEVICE_TABLET", "maybe")

		_, err := device.LoadConfig()
		assert.ErrorIs(t, err, device.ErrParsingConfig)
	})
}

func TestNewClassifierFromConfig(t *testing.T) {
	t.Parallel()

	cfg := device.Config{
		CacheTTL:        time.Minute,
		CacheMaxEntries: 2,
		Tablet:          true,
	}

	t.Run("config options become defaults", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifierFromConfig(cfg)

		assert.Equal(t, "1m0s", c.CacheStats().TTL)
		assert.True(t, c.IsMobile(device.WithUAString(iPadUA)), "tablets count as mobile")
		assert.False(t, c.IsMobile(device.WithUAString(iPadUA), device.WithTablet(false)))
	})

	t.Run("max entries bounds the cache", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifierFromConfig(cfg)

		for _, ua := range testSignals {
			c.OS(device.WithUAString(ua))
		}
		assert.LessOrEqual(t, c.CacheStats().Size, 2)
	})

	t.Run("extra options win", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifierFromConfig(cfg, device.WithCacheTTL(time.Hour))
		assert.Equal(t, "1h0m0s", c.CacheStats().TTL)
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		t.Parallel()
		c := device.NewClassifierFromConfig(device.Config{})
		assert.Equal(t, device.DefaultCacheTTL.String(), c.CacheStats().TTL)
	})
}
