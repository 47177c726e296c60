// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cratetype "github.com/lgtm-migrator/crate-go"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (l *Logger) Log(level cratetype.LogLevel, msg string, data map[string]interface{}) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case cratetype.LogLevelTrace:
		l.logger.Debug(msg, append(fields, zap.Stringer("CRATE_LOG_LEVEL", level))...)
	case cratetype.LogLevelDebug:
		l.logger.Debug(msg, fields...)
	case cratetype.LogLevelInfo:
		l.logger.Info(msg, fields...)
	case cratetype.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case cratetype.LogLevelError:
		l.logger.Error(msg, fields...)
	default:
		l.logger.Error(msg, append(fields, zap.Stringer("INVALID_CRATE_LOG_LEVEL", level))...)
	}
}
