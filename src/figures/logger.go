package figures

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LogLevel represents severity.
type LogLevel = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel = new(slog.LevelVar)

var baseLogger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      currentLevel,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// ConfigureLogging redirects log output. Colour is dropped when noColor is set.
func ConfigureLogging(w io.Writer, noColor bool) {
	baseLogger = newLogger(w, noColor)
}

// SetLogLevel parses and sets the global log level. It reports false for unknown names
// and leaves the level unchanged.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	currentLevel.Set(l)
	return true
}

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return currentLevel.Level() }

func logf(l LogLevel, format string, args ...interface{}) {
	if !baseLogger.Enabled(context.Background(), l) {
		return
	}
	// Only format when there are args so literal % in preformatted text survives.
	if len(args) == 0 {
		baseLogger.Log(context.Background(), l, format)
		return
	}
	baseLogger.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start).Round(time.Millisecond))
}
