package main

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/devicekit/pkg/httpserver"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTP     serveConfig
}

// serveConfig sizes the detection service. Requests carry no body, so the
// read and write budgets stay short.
type serveConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// serverOptions turns the config into server options. Zero durations keep the
// server defaults, and a non-empty addr overrides HTTP_ADDR.
func (c serveConfig) serverOptions(log *slog.Logger, addr string) []httpserver.Option {
	if addr == "" {
		addr = c.Addr
	}

	opts := []httpserver.Option{httpserver.WithLogger(log)}
	if addr != "" {
		opts = append(opts, httpserver.WithAddr(addr))
	}
	for _, d := range []struct {
		v   time.Duration
		opt func(time.Duration) httpserver.Option
	}{
		{c.ReadTimeout, httpserver.WithReadTimeout},
		{c.WriteTimeout, httpserver.WithWriteTimeout},
		{c.IdleTimeout, httpserver.WithIdleTimeout},
		{c.ShutdownTimeout, httpserver.WithShutdownTimeout},
	} {
		if d.v > 0 {
			opts = append(opts, d.opt(d.v))
		}
	}
	return opts
}
