package xlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestXLoggerPlainText(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithComponent("tst"),
		WithLogLevel(LogLevelDebug),
		WithWriter(buf),
	)

	logger.Debug("debug message")
	logger.Info("info message", zap.Int64("count", 42))
	logger.Error(errors.New("boom"), "error message")
	require.NoError(t, logger.Sync())

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "error message")
	require.Contains(t, out, "boom")
	require.Contains(t, out, "tst")
}

func TestXLoggerLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithLogLevel(LogLevelDebug),
		WithWriter(buf),
	)
	require.Equal(t, zapcore.DebugLevel.String(), logger.Level())

	logger.IncreaseLogLevel(zapcore.WarnLevel)
	logger.Debug("hidden")
	logger.Info("hidden as well")
	logger.Warn("visible")
	require.NoError(t, logger.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "visible")
}

func TestXLoggerJSONEncoder(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithEncoder(JSON),
		WithWriter(buf),
	)
	logger.Info("structured", zap.String("k", "v"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	require.Contains(t, out, `"msg":"structured"`)
	require.Contains(t, out, `"k":"v"`)
}
