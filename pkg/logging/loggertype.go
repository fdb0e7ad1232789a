package logging

import (
	"strings"

	"github.com/pkg/errors"
)

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerConsole: zap console encoder with development settings.
//   - LoggerJSON: zap JSON encoder.
type LoggerType int

const (
	LoggerConsole LoggerType = iota
	LoggerJSON
)

func (t LoggerType) String() string {
	switch t {
	case LoggerConsole:
		return "console"
	case LoggerJSON:
		return "json"
	default:
		return "unknown"
	}
}

func (t LoggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "console", "text", "pretty":
		*t = LoggerConsole
	case "json":
		*t = LoggerJSON
	default:
		return errors.Errorf("unsupported logger type '%s'", string(text))
	}
	return nil
}
