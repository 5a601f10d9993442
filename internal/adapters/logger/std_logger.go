package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	// file is the log file opened by NewStdLoggerWithOptions, if any.
	file *os.File
}

// Options controls how NewStdLoggerWithOptions builds the underlying l.Logger.
type Options struct {
	// File is a path to append log lines to; it takes precedence over Output.
	File string
	// Output receives log lines when File is empty; nil means stdout.
	Output io.Writer
	// JSON switches the output to JSON lines.
	JSON bool
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (ports.Logger, error) {
	return NewStdLoggerWithOptions(Options{})
}

// NewStdLoggerWithOptions creates a standard logger writing to a file, the
// given writer, or stdout. Only a file opened here is closed by Close.
func NewStdLoggerWithOptions(opts Options) (ports.Logger, error) {
	var output io.Writer = os.Stdout
	if opts.Output != nil {
		output = opts.Output
	}

	var file *os.File
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		output = f
	}

	logger, err := newStdLogger(l.Config{
		Output:      writerOnly{output},
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, err
	}
	logger.file = file
	return logger, nil
}

// writerOnly hides Close from l, whose async writer closes any io.Closer it
// is given, including os.Stdout and os.Stderr.
type writerOnly struct {
	io.Writer
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := newStdLogger(config)
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newStdLogger(config l.Config) (*StdLogger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &StdLogger{logger: logger}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger, then the log file it owns.
func (s *StdLogger) Close() error {
	err := s.logger.Close()
	if s.file != nil {
		err = errors.Join(err, s.file.Close())
	}
	return err
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}
