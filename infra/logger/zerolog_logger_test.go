package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("FOOTPRINT_ENV", "dev")
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerJSONOutput(t *testing.T) {
	t.Setenv("FOOTPRINT_ENV", "prod")
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "widget")
	l.Infof("served %d modes", 11)
	out := buf.String()
	assert.True(t, strings.Contains(out, `"component":"widget"`), "component field missing: %s", out)
	assert.True(t, strings.Contains(out, "served 11 modes"), "message missing: %s", out)
}
