package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve detection over HTTP",
		Long: `Serve detection over HTTP until interrupted.

Routes:
  GET    /detect     classify the request's own User-Agent
  GET    /classify   classify ?ua= (with ?tablet=, ?feature_detect=)
  GET    /cache      cache statistics
  DELETE /cache      clear the cache
  GET    /healthz    liveness probe
  GET    /metrics    Prometheus metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetAsDefault(a.log)

			srv := httpserver.New(a.cfg.HTTP.serverOptions(a.log, addr)...)

			if err := srv.Run(cmd.Context(), newRouter(a.classifier, a.log, a.format)); err != nil {
				a.log.Error("server stopped", logger.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}
