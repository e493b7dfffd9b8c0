// Package config defines process configuration and loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment on top via Load.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataFile is the path of the persisted skill collection.
	DataFile string `koanf:"data_file"`

	// MetricsAddr configures an optional Prometheus listen address,
	// e.g. ":9090". Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// ListLimit caps ranking output. Zero means unlimited.
	ListLimit int `koanf:"list_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		DataFile:    "mastery.json",
		MetricsAddr: "",
		ListLimit:   0,
	}
}
