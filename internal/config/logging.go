package config

import (
	"os"

	"github.com/rshade/paginator/internal/logging"
)

// ToLoggingConfig converts LoggingConfig to logging.Config. A configured file
// selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section with
// PAGINATOR_LOG_LEVEL and PAGINATOR_LOG_FORMAT applied.
func GetLoggingConfig() LoggingConfig {
	lc := GetGlobalConfig().Logging
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		lc.Level = lvl
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		lc.Format = format
	}
	return lc
}
