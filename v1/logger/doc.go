// Package logger provides structured logging on top of go.uber.org/zap.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" pattern:
//   - Logger interface: the contract other packages depend on
//   - LoggerClient struct: the zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides both *LoggerClient and Logger
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Info,
//	    ServiceName:   "dashsearch",
//	    EnableTracing: true,
//	})
//
//	log.Info("collection created", nil, map[string]interface{}{
//	    "collection": "poems",
//	})
//
//	// trace_id and span_id are added from the span in ctx
//	log.InfoWithContext(ctx, "search finished", nil, map[string]interface{}{
//	    "results": 5,
//	})
//
// # Configuration
//
// NewConfig reads:
//   - ZAP_LOGGER_LEVEL: debug, info, warning or error (default info)
//   - SERVICE_NAME: value of the "service" field
//   - ZAP_LOGGER_ENABLE_TRACING: "true" to add trace ids to *WithContext entries
//
// # FX Integration
//
//	app := fx.New(
//	    fx.Provide(logger.NewConfig),
//	    logger.FXModule,
//	)
//
// The logger is synced on application stop.
package logger
