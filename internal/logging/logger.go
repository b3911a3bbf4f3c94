// Package logging wraps zap with the level mapping and daily-rotating file
// sink the interchange pipeline's env contract (ITX_LOG_LEVEL, ITX_LOG_PATH)
// describes.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelFromName maps the ITX_LOG_LEVEL vocabulary onto zap levels. "critical"
// has no direct zap equivalent; it is mapped to DPanic so it is the most
// severe level that still lets the stage return its own error instead of
// crashing the process via a log call.
func levelFromName(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "critical":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger that writes structured lines to both stderr and the
// rotating file at path, at the configured level.
func New(levelName, path string) (*zap.Logger, func() error, error) {
	level := levelFromName(levelName)

	rotator, err := NewDailyRotatingWriter(path, 3)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open rotating sink: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)
	logger := zap.New(core)

	return logger, rotator.Close, nil
}

// WithStage returns a child logger tagged with the stage name and the
// artifact's client/file identifiers, matching every pipeline command's
// entry-log convention.
func WithStage(l *zap.Logger, stage, clientID, fileID string) *zap.Logger {
	return l.With(
		zap.String("stage", stage),
		zap.String("client_id", clientID),
		zap.String("file_id", fileID),
	)
}
