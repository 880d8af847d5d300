// Package logger provides structured logging for the ebsim tool using zap.
//
// Console output goes to stderr, keeping stdout free for results. An
// optional log file is rotated by lumberjack.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It discards everything until Init is called.
var Log = zap.NewNop()

// Sugar is the sugared variant of Log.
var Sugar = Log.Sugar()

// rotation limits of the log file
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// Init sets up Log and Sugar for level ("debug", "info", "warn" or "error")
// and an optional log file.
func Init(level string, logFile string) {
	var file io.Writer
	if logFile != "" {
		file = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
			LocalTime:  true,
		}
	}
	setup(parseLevel(level), os.Stderr, file)
}

// setup tees console and file output. Either writer may be nil.
func setup(lvl zapcore.Level, console, file io.Writer) {
	var cores []zapcore.Core
	if console != nil {
		enc := encoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(console), lvl))
	}
	if file != nil {
		enc := encoderConfig()
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(file), lvl))
	}
	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}
}

// parseLevel maps unknown levels to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
