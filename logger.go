package cratetype

import "errors"

// LogLevel represents the minimum level of diagnostics a Converter emits.
type LogLevel int

// The values for log levels are chosen such that the zero value means that
// no log level was specified.
const (
	LogLevelTrace LogLevel = 6
	LogLevelDebug LogLevel = 5
	LogLevelInfo  LogLevel = 4
	LogLevelWarn  LogLevel = 3
	LogLevelError LogLevel = 2
	LogLevelNone  LogLevel = 1
)

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		return "invalid"
	}
}

// Logger is the interface used to get logging from cratetype internals.
// Adapters for common logging packages live under log/.
type Logger interface {
	Log(level LogLevel, msg string, data map[string]any)
}

// LogLevelFromString converts a log level string to its constant.
//
// Valid levels:
//
//	trace
//	debug
//	info
//	warn
//	error
//	none
func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none":
		return LogLevelNone, nil
	default:
		return 0, errors.New("invalid log level")
	}
}
