package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel is used for unknown level strings. The config validator
// rejects those, so this only matters before the config is loaded.
const defaultZapLevel = zapcore.InfoLevel

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newSplitCore logs brightness changes and other routine messages to out,
// and warnings, retries and fatal diagnostics to errOut.
func newSplitCore(level zapcore.Level, out, errOut zapcore.WriteSyncer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	routine := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.WarnLevel
	})
	problems := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l >= zapcore.WarnLevel
	})

	return zapcore.NewTee(
		zapcore.NewCore(encoder, out, routine),
		zapcore.NewCore(encoder.Clone(), errOut, problems),
	)
}

func newZapLogger(levelStr string) *Logger {
	core := newSplitCore(toZapLevel(levelStr), zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}
}
