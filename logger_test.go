package cratetype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cratetype "github.com/lgtm-migrator/crate-go"
)

func TestLogLevelFromString(t *testing.T) {
	for _, tt := range []struct {
		s     string
		level cratetype.LogLevel
	}{
		{"trace", cratetype.LogLevelTrace},
		{"debug", cratetype.LogLevelDebug},
		{"info", cratetype.LogLevelInfo},
		{"warn", cratetype.LogLevelWarn},
		{"error", cratetype.LogLevelError},
		{"none", cratetype.LogLevelNone},
	} {
		level, err := cratetype.LogLevelFromString(tt.s)
		require.NoError(t, err)
		assert.Equal(t, tt.level, level)
		assert.Equal(t, tt.s, level.String())
	}

	_, err := cratetype.LogLevelFromString("verbose")
	require.EqualError(t, err, "invalid log level")
}

type capturingLogger struct {
	level cratetype.LogLevel
	msg   string
	data  map[string]any
	calls int
}

func (l *capturingLogger) Log(level cratetype.LogLevel, msg string, data map[string]any) {
	l.level = level
	l.msg = msg
	l.data = data
	l.calls++
}

func TestConverterLogsUnknownCodeFallback(t *testing.T) {
	logger := &capturingLogger{}
	c := cratetype.NewDefaultConverter(cratetype.WithLogger(logger))

	_, err := c.Resolve(cratetype.ScalarType(cratetype.DataType(28)))
	require.NoError(t, err)
	assert.Equal(t, 1, logger.calls)
	assert.Equal(t, cratetype.LogLevelDebug, logger.level)
	assert.Equal(t, int32(28), logger.data["code"])

	// Known codes resolve silently.
	_, err = c.Resolve(cratetype.ScalarType(cratetype.Text))
	require.NoError(t, err)
	assert.Equal(t, 1, logger.calls)
}

func TestConverterLogLevelFiltersFallbackLog(t *testing.T) {
	logger := &capturingLogger{}
	c := cratetype.NewDefaultConverter(
		cratetype.WithLogger(logger),
		cratetype.WithLogLevel(cratetype.LogLevelError),
	)

	_, err := c.Resolve(cratetype.ScalarType(cratetype.DataType(28)))
	require.NoError(t, err)
	assert.Equal(t, 0, logger.calls)
}
