// Package logger provides the structured logger used across projgen. It
// writes to stderr and, when a log file is requested, to that file as well.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options controls where and how much the logger writes.
type Options struct {
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
	// File, if set, also receives every log line. Parent directories are
	// created and an existing file is truncated.
	File string
	// Verbose lowers the level from info to debug.
	Verbose bool
}

// Logger is a charmbracelet/log logger that owns its optional log file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a logger according to opts.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var f *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		var err error
		f, err = os.Create(opts.File)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		w = io.MultiWriter(w, f)
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	l := log.NewWithOptions(w, log.Options{
		Prefix:          "projgen",
		Level:           level,
		ReportTimestamp: f != nil,
	})
	return &Logger{Logger: l, file: f}, nil
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// LogPath returns the path of the log file, or "" when there is none.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
