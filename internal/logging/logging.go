package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      string
	logger       = zap.NewNop()
)

// Error writes errors to the configured log file. Without a log file the
// call is a no-op.
func Error(err error) {
	if err == nil {
		return
	}
	current().Error("error", zap.Error(err))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	l := logger
	traceMu.Unlock()
	if !enabled {
		return
	}
	if payload == nil {
		l.Debug(event)
		return
	}
	l.Debug(event, zap.Any("payload", payload))
}

// Configure sets the log destination. An empty path disables file logging so
// the program leaves nothing on disk. Directories are created automatically
// when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	_ = logger.Sync()
	logger = zap.NewNop()
	logPath = ""
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		return
	}
	l, err := newFileLogger(trimmed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	logger = l
	logPath = trimmed
}

// Path reports the active log file, or "" when logging is disabled.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}

func current() *zap.Logger {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logger
}

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
