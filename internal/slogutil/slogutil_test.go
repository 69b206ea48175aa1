package slogutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, "text")

	logger.Info("call failed", "op", "CoordSys.Delete", "code", 1)

	out := buf.String()
	assert.Contains(t, out, "[info] call failed | op=CoordSys.Delete code=1")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, "")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[warn] shown")
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug, "text").With("store", "model.db").WithGroup("csi")

	logger.Debug("open", "version", "v21")

	assert.Contains(t, buf.String(), "| store=model.db csi.version=v21")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo, "JSON").Info("hello", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("DEBUG"))
	assert.Equal(t, slog.LevelWarn, LevelFromString("warning"))
	assert.Equal(t, slog.LevelError, LevelFromString("error"))
	assert.Equal(t, slog.LevelInfo, LevelFromString("bogus"))
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, Silent, LevelFromVerbosity(slog.LevelDebug, 2, true))
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(slog.LevelWarn, 0, false))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(slog.LevelWarn, 1, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(slog.LevelInfo, 1, false))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(slog.LevelWarn, 3, false))
}
