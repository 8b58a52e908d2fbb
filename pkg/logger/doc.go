// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat, WithLevel, WithOutput – handler selection
//   - WithEnvironment – per-environment defaults (text/debug in development,
//     JSON/info in staging and production)
//   - WithAttr – static attributes on every record
//   - WithContextExtractors – attributes pulled from the context on every record
//
// ParseLevel maps configured level names such as "debug" or "warn" to slog
// levels.
//
// The handler produced by New is wrapped in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks before delegating.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "devicedetect"),
//	    logger.WithContextExtractors(device.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "classified", logger.Signal(ua), logger.DeviceType("mobile"))
//
// Attribute helpers such as Error return an empty slog.Attr for nil input so
// they can be passed unconditionally.
package logger
