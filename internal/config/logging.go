package config

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLogLevel is used when no level is configured
const DefaultLogLevel = "info"

// ConfigureLogging installs the process-wide logger writing to w
func ConfigureLogging(w io.Writer, level, prefix string) error {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("config: log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           lvl,
	})
	log.SetDefault(logger)
	return nil
}
