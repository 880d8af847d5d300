package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	setup(zapcore.WarnLevel, &buf, nil)
	defer Sync()
	Sugar.Infof("hidden %d", 1)
	Log.Warn("shown", zap.Int("samples", 300))
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN shown")
	assert.Contains(t, out, "samples")
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ebsim.log")
	Init("debug", logFile)
	Sugar.Debugf("light curve with %d points", 301)
	Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "DEBUG")
	assert.Contains(t, line, "light curve with 301 points")
	assert.Contains(t, line, "logger_test.go")
}
