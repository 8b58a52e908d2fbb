package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/requestid"
)

func serveRequest(t *testing.T, h http.Handler, method, target, ua string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	t.Parallel()

	newHandler := func() (http.Handler, *device.Classifier) {
		c := device.NewClassifier()
		return newRouter(c, logger.Discard(), "json"), c
	}

	t.Run("detect classifies the caller", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		rec := serveRequest(t, h, http.MethodGet, "/detect", iPhoneUA)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))

		var got device.Info
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.IsMobile)
		assert.Equal(t, iPhoneUA, got.RawSignal)
	})

	t.Run("detect reads viewport hints", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		req := httptest.NewRequest(http.MethodGet, "/detect", nil)
		req.Header.Set("User-Agent", iPhoneUA)
		req.Header.Set("Sec-CH-Viewport-Width", "390")
		req.Header.Set("Sec-CH-Viewport-Height", "844")
		req.Header.Set("Sec-CH-DPR", "3")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, device.ClientHints, rec.Header().Get("Accept-CH"))

		var got device.Info
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, device.Screen{Width: 390, Height: 844, PixelRatio: 3}, got.Screen)
	})

	t.Run("detect in yaml", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		rec := serveRequest(t, h, http.MethodGet, "/detect?format=yaml", chromeUA)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

		var got device.Info
		require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.IsDesktop)
	})

	t.Run("classify query", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		q := url.Values{"ua": {iPadUA}, "tablet": {"true"}}
		rec := serveRequest(t, h, http.MethodGet, "/classify?"+q.Encode(), chromeUA)
		require.Equal(t, http.StatusOK, rec.Code)

		var got result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.IsTablet)
		assert.Equal(t, iPadUA, got.RawSignal)
		require.NotNil(t, got.Hybrid)
		assert.Equal(t, device.MethodSignalOnly, got.Hybrid.Method)
		assert.True(t, got.Hybrid.IsMobile)
	})

	t.Run("classify rejects bad flags", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		rec := serveRequest(t, h, http.MethodGet, "/classify?ua=x&feature_detect=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cache stats and clear", func(t *testing.T) {
		t.Parallel()
		h, c := newHandler()

		serveRequest(t, h, http.MethodGet, "/detect", iPhoneUA)

		rec := serveRequest(t, h, http.MethodGet, "/cache", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var stats device.CacheStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Positive(t, stats.Size)
		assert.Len(t, stats.Keys, stats.Size)

		rec = serveRequest(t, h, http.MethodDelete, "/cache", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, c.CacheStats().Size)
	})

	t.Run("metrics count detections", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		serveRequest(t, h, http.MethodGet, "/detect", iPhoneUA)
		serveRequest(t, h, http.MethodGet, "/classify?ua="+url.QueryEscape(chromeUA), "")

		rec := serveRequest(t, h, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `devicekit_detections_total{device_type="mobile"} 1`)
		assert.Contains(t, body, `devicekit_detections_total{device_type="desktop"} 1`)
		assert.Contains(t, body, "devicekit_cache_hits_total")
	})

	t.Run("healthz", func(t *testing.T) {
		t.Parallel()
		h, _ := newHandler()

		rec := serveRequest(t, h, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})
}
