package config

import (
	"io"

	"github.com/rshade/uistate/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config writing
// to out when no file is configured.
func (lc LoggingConfig) ToLoggingConfig(out io.Writer) logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
		Output: out,
	}
}

// GetLoggingConfig returns the Logging section of the global configuration.
// The returned value is a copy; flag overrides such as --debug are applied by
// the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
