package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Level:           log.InfoLevel,
})

// Logger returns the process-wide logger.
func Logger() *log.Logger {
	return logger
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// SetOutput redirects log output, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ToFile redirects logging to path while the TUI owns the terminal.
// The returned closer restores stderr output.
func ToFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)
	return closerFunc(func() error {
		logger.SetOutput(os.Stderr)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (fn closerFunc) Close() error { return fn() }

// With returns a child logger carrying keyvals on every record.
func With(keyvals ...interface{}) *log.Logger {
	return logger.With(keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { logger.Error(msg, keyvals...) }
