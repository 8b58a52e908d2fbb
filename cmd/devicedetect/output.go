package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// result is one classified signal as printed by the CLI and returned by
// /classify.
type result struct {
	device.Info `yaml:",inline"`
	Hybrid      *device.HybridResult `json:"hybrid,omitempty" yaml:"hybrid,omitempty"`
}

// encoder writes a stream of values. YAML values become separate documents.
type encoder interface {
	Encode(v any) error
}

func newEncoder(w io.Writer, format string) encoder {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc
}

func closeEncoder(enc encoder) error {
	if c, ok := enc.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
