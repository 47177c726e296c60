package kitlogadapter

import (
	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"

	cratetype "github.com/lgtm-migrator/crate-go"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level cratetype.LogLevel, msg string, data map[string]interface{}) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case cratetype.LogLevelTrace:
		logger.Log("CRATE_LOG_LEVEL", level, "msg", msg)
	case cratetype.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case cratetype.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case cratetype.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case cratetype.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_CRATE_LOG_LEVEL", level, "error", msg)
	}
}
