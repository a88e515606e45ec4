package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the zap logger built by NewLoggerClient.
type Config struct {
	// Level is one of debug, info, warning or error. Anything else maps to info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as "service".
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// EnableTracing adds trace_id and span_id to entries logged with a context.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ZAP_LOGGER_ENABLE_TRACING"`
}

// NewConfig reads the logger configuration from the environment.
func NewConfig() Config {
	return Config{
		Level:         os.Getenv("ZAP_LOGGER_LEVEL"),
		ServiceName:   os.Getenv("SERVICE_NAME"),
		EnableTracing: os.Getenv("ZAP_LOGGER_ENABLE_TRACING") == "true",
	}
}
