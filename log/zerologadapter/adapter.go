// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"github.com/rs/zerolog"

	cratetype "github.com/lgtm-migrator/crate-go"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom
// cratetype logging fascade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "cratetype").Logger(),
	}
}

func (l *Logger) Log(level cratetype.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case cratetype.LogLevelNone:
		zlevel = zerolog.NoLevel
	case cratetype.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case cratetype.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case cratetype.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case cratetype.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	log := l.logger.With().Fields(data).Logger()
	log.WithLevel(zlevel).Msg(msg)
}
