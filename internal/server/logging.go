package server

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the access-log sink. An empty Filename logs to
// stdout instead of a rotated file.
type LogConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger wraps a zap.SugaredLogger for the access-log decorator.
type Logger struct {
	sugared *zap.SugaredLogger
}

// NewLogger builds a Logger per cfg, rotating through lumberjack when
// Filename is set.
func NewLogger(cfg LogConfig) *Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	}
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var sink zapcore.WriteSyncer
	if cfg.Filename == "" {
		sink = zapcore.AddSync(os.Stdout)
	} else {
		os.MkdirAll(filepath.Dir(cfg.Filename), 0o755)
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  false,
		})
	}

	core := zapcore.NewCore(encoder, sink, zapcore.InfoLevel)
	return &Logger{sugared: zap.New(core, zap.AddCaller()).Sugar()}
}

// Infof logs a formatted line at info level.
func (l *Logger) Infof(template string, args ...any) {
	l.sugared.Infof(template, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugared.Sync()
}
