// Package logging builds the structured logger used across the rocket CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "rocket"

// ParseLevel maps a config level name to an hclog level.
// "off" is reported with ok=false and handled by New.
func ParseLevel(level string) (lvl hclog.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return hclog.Trace, true, nil
	case "debug":
		return hclog.Debug, true, nil
	case "info", "":
		return hclog.Info, true, nil
	case "warn", "warning":
		return hclog.Warn, true, nil
	case "error":
		return hclog.Error, true, nil
	case "off", "none":
		return hclog.NoLevel, false, nil
	default:
		return hclog.NoLevel, false, fmt.Errorf("invalid log level: %q", level)
	}
}

// New returns a logger writing to w at the given level.
// format is "text" or "json".
func New(level, format string, w io.Writer) (hclog.Logger, error) {
	lvl, enabled, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return hclog.NewNullLogger(), nil
	}

	var jsonFormat bool
	switch strings.ToLower(format) {
	case "json":
		jsonFormat = true
	case "text", "":
	default:
		return nil, fmt.Errorf("invalid log format: %q", format)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      lvl,
		Output:     w,
		JSONFormat: jsonFormat,
	}), nil
}

// Discard returns a logger that drops everything. Used by tests and by
// library callers that do not care about step logs.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
