package logger

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the process-wide Logger stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(charm.Default()))
}

// Default returns the process-wide Logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process-wide Logger. Nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// Configure points the default logger at the configured file and level.
// "/dev/stderr" and "/dev/stdout" map to the process streams; any other path is
// opened for appending and returned so the caller can close it.
func Configure(level LogLevel, file string) (io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)

	switch file {
	case "", "/dev/stderr":
	case "/dev/stdout":
		out = os.Stdout
	default:
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		closer = f
	}

	l := NewWithOutput(out)
	l.SetLevel(level.ToLevel())
	SetDefault(l)

	return closer, nil
}

func Trace(msg interface{}, keyvals ...interface{}) { Default().Trace(msg, keyvals...) }

func Debug(msg interface{}, keyvals ...interface{}) { Default().Debug(msg, keyvals...) }

func Info(msg interface{}, keyvals ...interface{}) { Default().Info(msg, keyvals...) }

func Warn(msg interface{}, keyvals ...interface{}) { Default().Warn(msg, keyvals...) }

func Error(msg interface{}, keyvals ...interface{}) { Default().Error(msg, keyvals...) }

// GetLevel returns the level of the default logger.
func GetLevel() Level {
	return Default().GetLevel()
}
