package zerologadapter_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	cratetype "github.com/lgtm-migrator/crate-go"
	"github.com/lgtm-migrator/crate-go/log/zerologadapter"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	zlogger := zerolog.New(&buf)
	logger := zerologadapter.NewLogger(zlogger)
	logger.Log(cratetype.LogLevelInfo, "hello", map[string]interface{}{"one": "two"})
	const want = `{"level":"info","module":"cratetype","one":"two","message":"hello"}
`
	got := buf.String()
	if got != want {
		t.Errorf("%s != %s", got, want)
	}
}
