package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// SetupLogger builds a logger for the given parameters writing to w, installs it as the global
// zap logger and returns it. Filter rules are applied on top of the level.
func SetupLogger(params Parameters, w io.Writer) *zap.Logger {
	al := zap.NewAtomicLevelAt(params.Level)
	core := zapcore.NewCore(newEncoder(params.Type), zapcore.Lock(zapcore.AddSync(w)), al)
	if params.Filter != "" {
		filter, err := zapfilter.ParseRules(params.Filter)
		if err != nil {
			panic(fmt.Sprintf("invalid log filter %q: %v", params.Filter, err))
		}
		core = zapfilter.NewFilteringCore(core, filter)
	}
	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger
}

func newEncoder(loggerType LoggerType) zapcore.Encoder {
	switch loggerType {
	case LoggerConsole:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case LoggerJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		panic(fmt.Sprintf("unsupported logger type %d", loggerType))
	}
}
