package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

const (
	iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	iPadUA   = "Mozilla/5.0 (iPad; CPU OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	cmd := newRootCommand(strings.NewReader(stdin), stdout, io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func decodeJSON(t *testing.T, out string) []map[string]any {
	t.Helper()

	var docs []map[string]any
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var doc map[string]any
		require.NoError(t, dec.Decode(&doc))
		docs = append(docs, doc)
	}
	return docs
}

func TestClassifyCommand(t *testing.T) {
	t.Run("yaml by default", func(t *testing.T) {
		out, err := execute(t, "", "classify", iPhoneUA)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "mobile", doc["device_type"])
		assert.Equal(t, "ios", doc["os"])
		assert.Equal(t, "safari", doc["browser"])
		assert.Equal(t, iPhoneUA, doc["raw_signal"])
		assert.NotContains(t, doc, "hybrid")
	})

	t.Run("json with tablet flag", func(t *testing.T) {
		out, err := execute(t, "", "classify", "--tablet", "-f", "json", iPadUA, chromeUA)
		require.NoError(t, err)

		docs := decodeJSON(t, out)
		require.Len(t, docs, 2)
		assert.Equal(t, "tablet", docs[0]["device_type"])
		assert.Equal(t, true, docs[0]["is_tablet"])
		assert.Equal(t, "desktop", docs[1]["device_type"])
		assert.Equal(t, "windows", docs[1]["os"])
	})

	t.Run("reads stdin lines", func(t *testing.T) {
		out, err := execute(t, iPhoneUA+"\n\n"+chromeUA+"\n", "classify", "-f", "json")
		require.NoError(t, err)

		docs := decodeJSON(t, out)
		require.Len(t, docs, 2)
		assert.Equal(t, "mobile", docs[0]["device_type"])
		assert.Equal(t, "desktop", docs[1]["device_type"])
	})

	t.Run("hybrid with live environment", func(t *testing.T) {
		out, err := execute(t, "", "classify", "-f", "json", "--hybrid", "--feature-detect",
			"--touch-points", "5", "--width", "820", "--height", "1180", "--dpr", "2", chromeUA)
		require.NoError(t, err)

		docs := decodeJSON(t, out)
		require.Len(t, docs, 1)
		hybrid, ok := docs[0]["hybrid"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hybrid", hybrid["method"])
		assert.Equal(t, true, hybrid["is_tablet"])
		assert.Equal(t, 0.8, hybrid["confidence"])
		assert.Equal(t, true, docs[0]["is_touch_device"])
	})

	t.Run("cache stats", func(t *testing.T) {
		out, err := execute(t, "", "classify", "-f", "json", "--cache-stats", iPhoneUA, iPhoneUA)
		require.NoError(t, err)

		docs := decodeJSON(t, out)
		require.Len(t, docs, 3)
		assert.NotZero(t, docs[2]["hits"])
		assert.Equal(t, "5m0s", docs[2]["ttl"])
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, "", "classify", "-f", "xml", iPhoneUA)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errInvalidFormat))
	})

	t.Run("config from environment", func(t *testing.T) {
		t.Setenv("DEVICE_TABLET", "true")

		out, err := execute(t, "", "classify", "-f", "json", iPadUA)
		require.NoError(t, err)
		docs := decodeJSON(t, out)
		require.Len(t, docs, 1)
		assert.Equal(t, "tablet", docs[0]["device_type"])
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv("DEVICE_CACHE_TTL", "never")

		_, err := execute(t, "", "classify", iPadUA)
		require.Error(t, err)
	})
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := execute(t, "", "classify", iPhoneUA)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}
