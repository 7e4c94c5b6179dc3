package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultErrorFile is where faults are appended when no path is configured.
const DefaultErrorFile = "error_logs.log"

// ErrorLog is an append-only fault log. One line per call carries the
// timestamp, level, source name and message.
type ErrorLog struct {
	logger *zap.Logger
}

// NewErrorLog opens (or creates) path for appending and returns a sink that
// writes ERROR lines to it under the given source name.
func NewErrorLog(path, source string) (*ErrorLog, error) {
	if path == "" {
		path = DefaultErrorFile
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "source",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeName:     zapcore.FullNameEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open error log %s: %w", path, err)
	}
	return &ErrorLog{logger: logger.Named(source)}, nil
}

// NewErrorLogFromZap wraps an existing zap logger.
func NewErrorLogFromZap(logger *zap.Logger) *ErrorLog {
	return &ErrorLog{logger: logger}
}

// Nop returns an ErrorLog that discards everything.
func Nop() *ErrorLog {
	return &ErrorLog{logger: zap.NewNop()}
}

// LogError appends one line for err. It never panics on a nil error.
func (l *ErrorLog) LogError(err error, msg string) {
	if l == nil || l.logger == nil {
		return
	}
	if err == nil {
		l.logger.Error(msg)
		return
	}
	l.logger.Error(msg, zap.Error(err))
}

// Close flushes buffered lines. Sync errors on terminals are ignored.
func (l *ErrorLog) Close() error {
	if l == nil || l.logger == nil {
		return nil
	}
	_ = l.logger.Sync()
	return nil
}

// NewAppLogger builds the process logger used by the CLI and web server.
func NewAppLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
