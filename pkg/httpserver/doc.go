// Package httpserver runs the HTTP surface of the detection service with
// graceful shutdown.
//
// Run binds the listener, serves until the context is cancelled or the
// process receives SIGINT or SIGTERM, and then drains connections within the
// shutdown timeout. Listen errors are wrapped with ErrStart and drain errors
// with ErrShutdown, so callers can tell them apart with errors.Is.
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
