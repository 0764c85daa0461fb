// Package output provides terminal output utilities.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance. Logs go to stderr so stdout carries
// only command results.
var logger *log.Logger

// logWriter is where SetupLogging sends log output.
var logWriter io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(logWriter, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls SetupLogging.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides the timestamp default (on). Ignored when Verbose.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(logWriter, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogWriter redirects log output, keeping the current level and options.
// Passing nil restores stderr.
func SetLogWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logWriter = w
	logger.SetOutput(w)
}

// FileLogger returns a child logger whose lines are prefixed with the source
// file name.
func FileLogger(path string) *log.Logger {
	name := path
	if name == "-" || name == "" {
		name = "stdin"
	}
	return logger.WithPrefix(StyleDim.Render("f:") + StyleNoun.Render(name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Details prints multi-line detail text to the log writer without
// decoration.
func Details(text string) {
	fmt.Fprintln(logWriter, text)
}
