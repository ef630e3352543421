package logging

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"dishmate/internal/domain/model"
	"dishmate/internal/infra/config"
)

// Logger records one entry per piece of advice handed out.
type Logger interface {
	Log(ctx context.Context, entry model.AdviceLogEntry) error
	Sync() error
}

type noopLogger struct{}

func (noopLogger) Log(context.Context, model.AdviceLogEntry) error { return nil }
func (noopLogger) Sync() error                                     { return nil }

func NewNoopLogger() Logger { return noopLogger{} }

type Options struct {
	Disabled bool
	// Debug tees entries to DebugOut in console format.
	Debug    bool
	DebugOut io.Writer
	// Path overrides the default advice.log location.
	Path string
}

type adviceLogger struct {
	z *zap.Logger
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

// NewAdviceLogger writes JSON lines to a rotating advice.log in the dishmate
// config directory.
func NewAdviceLogger(ctx context.Context, opts Options) (Logger, error) {
	_ = ctx
	if opts.Disabled {
		return noopLogger{}, nil
	}

	path := opts.Path
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "advice.log")
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     90, // days
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotator), zapcore.InfoLevel),
	}
	if opts.Debug && opts.DebugOut != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig()),
			zapcore.AddSync(opts.DebugOut),
			zapcore.DebugLevel,
		))
	}
	return NewZapLogger(zap.New(zapcore.NewTee(cores...))), nil
}

// NewZapLogger adapts an existing zap logger.
func NewZapLogger(z *zap.Logger) Logger {
	return &adviceLogger{z: z}
}

func (l *adviceLogger) Log(_ context.Context, entry model.AdviceLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	fields := []zap.Field{
		zap.Time("advised_at", entry.Timestamp),
		zap.String("request_id", entry.RequestID),
		zap.String("command", entry.Command),
		zap.String("outcome", entry.Outcome),
		zap.Int64("duration_ms", entry.DurationMS),
	}
	if entry.Detail != "" {
		fields = append(fields, zap.String("detail", entry.Detail))
	}
	l.z.Info("advice", fields...)
	l.z.Debug("advice detail", zap.Any("entry", entry))
	return nil
}

func (l *adviceLogger) Sync() error {
	return l.z.Sync()
}
