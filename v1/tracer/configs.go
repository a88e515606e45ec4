package tracer

import "os"

// Config controls the tracer provider built by NewClient.
type Config struct {
	// ServiceName is recorded as service.name on every span.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as deployment.environment.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the collector host:port. Empty means the exporter reads
	// OTEL_EXPORTER_OTLP_ENDPOINT or falls back to localhost:4318.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}

// NewConfig reads the tracer configuration from the environment.
func NewConfig() Config {
	return Config{
		ServiceName:  os.Getenv("TRACER_SERVICE_NAME"),
		AppEnv:       os.Getenv("APP_ENV"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
		Endpoint:     os.Getenv("TRACER_ENDPOINT"),
		Insecure:     os.Getenv("TRACER_INSECURE") == "true",
	}
}
