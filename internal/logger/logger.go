package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/Adda-Baaj/museum-collection/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Logger is the structured logging surface the application depends on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (*NopLogger) InfoObj(string, string, interface{})  {}
func (*NopLogger) DebugObj(string, string, interface{}) {}
func (*NopLogger) WarnObj(string, string, interface{})  {}
func (*NopLogger) ErrorObj(string, string, interface{}) {}

// ZapLogger implements Logger on top of zap.
type ZapLogger struct {
	l *zap.Logger
}

// Init initializes the package logger using settings from config. Entries
// go to w, or stderr when w is nil, so stdout carries only command results.
func Init(cfg *config.Config, w io.Writer) (*ZapLogger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if w == nil {
		w = os.Stderr
	}
	zl := New(cfg.LogLevel, w)
	S = zl.l.Sugar()
	return zl, nil
}

// New builds a JSON zap logger writing to w at the named level.
func New(level string, w io.Writer) *ZapLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(zapcore.AddSync(w))),
		parseLevel(level),
	)

	return &ZapLogger{l: zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *ZapLogger) InfoObj(msg, key string, obj interface{})  { z.l.Info(msg, zap.Any(key, obj)) }
func (z *ZapLogger) DebugObj(msg, key string, obj interface{}) { z.l.Debug(msg, zap.Any(key, obj)) }
func (z *ZapLogger) WarnObj(msg, key string, obj interface{})  { z.l.Warn(msg, zap.Any(key, obj)) }
func (z *ZapLogger) ErrorObj(msg, key string, obj interface{}) { z.l.Error(msg, zap.Any(key, obj)) }

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error { return z.l.Sync() }

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// Minimal object logging helpers -------------------------------------------------
// These log the given object as a structured field named `key` on the
// package logger and are no-ops before Init.
func InfoObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Info(msg, zap.Any(key, obj))
}

func DebugObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Debug(msg, zap.Any(key, obj))
}

func WarnObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Warn(msg, zap.Any(key, obj))
}

func ErrorObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Error(msg, zap.Any(key, obj))
}
