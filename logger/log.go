package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	lWriter "github.com/sirupsen/logrus/hooks/writer"
)

// Setup a basic empty logger on init.
func init() {
	logger := logrus.StandardLogger()
	logger.SetOutput(io.Discard)

	Log = logger
}

// InitLogger initializes a full logging instance writing to stderr at a
// level matching the requested verbosity.
func InitLogger(verbose bool, debug bool) {
	logger := logrus.StandardLogger()
	logger.Level = logrus.DebugLevel
	logger.SetOutput(io.Discard)

	// Setup the formatter.
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	// Setup log level.
	levels := []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
	if debug {
		levels = append(levels, logrus.InfoLevel, logrus.DebugLevel)
	} else if verbose {
		levels = append(levels, logrus.InfoLevel)
	}

	logger.AddHook(&lWriter.Hook{
		Writer:    os.Stderr,
		LogLevels: levels,
	})

	Log = logger
}

func entry(ctx []Ctx) *logrus.Entry {
	if len(ctx) > 0 {
		return Log.WithFields(logrus.Fields(ctx[0]))
	}

	return logrus.NewEntry(Log)
}

// Debug logs a message (with optional context) at the DEBUG log level.
func Debug(msg string, ctx ...Ctx) {
	entry(ctx).Debug(msg)
}

// Info logs a message (with optional context) at the INFO log level.
func Info(msg string, ctx ...Ctx) {
	entry(ctx).Info(msg)
}

// Warn logs a message (with optional context) at the WARNING log level.
func Warn(msg string, ctx ...Ctx) {
	entry(ctx).Warn(msg)
}

// Error logs a message (with optional context) at the ERROR log level.
func Error(msg string, ctx ...Ctx) {
	entry(ctx).Error(msg)
}

// Debugf logs at the DEBUG log level using a standard printf format string.
func Debugf(format string, args ...any) {
	Log.Debug(fmt.Sprintf(format, args...))
}

// Infof logs at the INFO log level using a standard printf format string.
func Infof(format string, args ...any) {
	Log.Info(fmt.Sprintf(format, args...))
}

// Warnf logs at the WARNING log level using a standard printf format string.
func Warnf(format string, args ...any) {
	Log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at the ERROR log level using a standard printf format string.
func Errorf(format string, args ...any) {
	Log.Error(fmt.Sprintf(format, args...))
}
