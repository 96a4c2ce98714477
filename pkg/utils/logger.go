package utils

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console-encoded zap logger. With an empty logFile it
// writes to stdout. The returned close function syncs the logger and
// releases the log file; it is never nil.
func NewLogger(level, logFile string) (*zap.Logger, func(), error) {
	if logFile == "" {
		logger := newLogger(parseLevel(level), os.Stdout)
		return logger, func() { _ = logger.Sync() }, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, func() {}, err
	}
	sink, closeSink, err := zap.Open(logFile)
	if err != nil {
		return nil, func() {}, err
	}
	logger := newLogger(parseLevel(level), sink)
	return logger, func() {
		_ = logger.Sync()
		closeSink()
	}, nil
}

func newLogger(level zapcore.Level, out io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = " | "

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(out),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
