package logging

import (
	"fmt"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type Parameters struct {
	Level  zapcore.Level
	Type   LoggerType
	Filter string

	flagLogLevel   string
	flagLoggerType string
}

// Initialize adds logging command line parameters to the flag set.
func (p *Parameters) Initialize(fs *flag.FlagSet) {
	fs.StringVar(&p.flagLogLevel, "log-level", "info",
		"Set the logging level. Supported values: debug, info, warn, error, fatal.")
	fs.StringVar(&p.flagLoggerType, "log-type", "console",
		"Set the logger output format. Supported types: console, json.")
	fs.StringVar(&p.Filter, "log-filter", "",
		"Filter log records by level and logger name, for example \"debug:evaluator* info:*\".")
}

// Parse parses the command line parameters for logging.
func (p *Parameters) Parse() error {
	var err error
	p.Level, err = p.parseLevel(p.flagLogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	p.Type, err = p.parseType(p.flagLoggerType)
	if err != nil {
		return errors.Wrap(err, "failed to parse logger parameters")
	}
	if p.Filter != "" {
		if _, err := zapfilter.ParseRules(p.Filter); err != nil {
			return errors.Wrapf(err, "invalid log filter '%s'", p.Filter)
		}
	}
	return nil
}

func (p *Parameters) String() string {
	return fmt.Sprintf("{Level: %s, Type: %s, Filter: %q}", p.Level, p.Type, p.Filter)
}

func (p *Parameters) parseLevel(l string) (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(l))
	if err != nil {
		return zapcore.InfoLevel, errors.Wrap(err, "invalid log level")
	}
	return level, nil
}

func (p *Parameters) parseType(t string) (LoggerType, error) {
	var lt LoggerType
	err := lt.UnmarshalText([]byte(t))
	if err != nil {
		return LoggerConsole, errors.Wrap(err, "invalid logger type")
	}
	return lt, nil
}
