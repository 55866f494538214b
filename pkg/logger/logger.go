package logger

import (
	"io"
	"math"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// Level is a logging level. It is charmbracelet/log's level extended with Trace.
type Level = charm.Level

const (
	// TraceLevel sits one step below charm's Debug level.
	TraceLevel Level = charm.DebugLevel - 1
	DebugLevel Level = charm.DebugLevel
	InfoLevel  Level = charm.InfoLevel
	WarnLevel  Level = charm.WarnLevel
	ErrorLevel Level = charm.ErrorLevel
	FatalLevel Level = charm.FatalLevel

	// OffLevel silences every message.
	OffLevel Level = math.MaxInt32
)

// LogLevel is the user-facing name of a level, as found in apkwrap.yaml and --logs-level.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// ParseLogLevel validates a configured level name. An empty name means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	for _, l := range []LogLevel{LogLevelOff, LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning} {
		if strings.EqualFold(logLevel, string(l)) {
			return l, nil
		}
	}

	return "", errors.Wrapf(errUtils.ErrInvalidLogLevel,
		"'%s'. Supported log levels are Trace, Debug, Info, Warning, Off", logLevel)
}

// ToLevel maps a LogLevel name to the charm level it enables.
func (l LogLevel) ToLevel() Level {
	switch l {
	case LogLevelOff:
		return OffLevel
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	default:
		return InfoLevel
	}
}

// Logger wraps a charmbracelet logger and adds the Trace level.
type Logger struct {
	*charm.Logger
}

// NewLogger wraps an existing charm logger and applies apkwrap's level styles.
func NewLogger(l *charm.Logger) *Logger {
	l.SetStyles(getLogStyles())
	return &Logger{Logger: l}
}

// NewWithOutput creates a logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	return NewLogger(charm.NewWithOptions(w, charm.Options{ReportTimestamp: false}))
}

// Trace logs a message at trace level.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Log(TraceLevel, msg, keyvals...)
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch lvl := l.GetLevel(); lvl {
	case TraceLevel:
		return "trace"
	case OffLevel:
		return "off"
	default:
		return lvl.String()
	}
}
