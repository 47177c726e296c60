// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"github.com/sirupsen/logrus"

	cratetype "github.com/lgtm-migrator/crate-go"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level cratetype.LogLevel, msg string, data map[string]interface{}) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case cratetype.LogLevelTrace:
		logger.WithField("CRATE_LOG_LEVEL", level).Debug(msg)
	case cratetype.LogLevelDebug:
		logger.Debug(msg)
	case cratetype.LogLevelInfo:
		logger.Info(msg)
	case cratetype.LogLevelWarn:
		logger.Warn(msg)
	case cratetype.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_CRATE_LOG_LEVEL", level).Error(msg)
	}
}
