package domain

import "time"

// Logger defines the logging interface.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Log(msg string)
}

// Clock defines the interface for time operations.
type Clock interface {
	Now() time.Time
}

// ConfigLoader defines the interface for loading configuration.
type ConfigLoader interface {
	Load() (*Config, error)
	Validate(data []byte) error
}

// ConfigWriter updates single keys of the configuration file in place.
type ConfigWriter interface {
	Set(key, value string) error
}
