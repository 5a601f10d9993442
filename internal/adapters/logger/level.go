package logger

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// leveled drops messages below a minimum level before they reach next.
type leveled struct {
	next ports.Logger
	min  Level
}

// WithLevel wraps next so that only messages at min or above are written.
func WithLevel(next ports.Logger, min Level) ports.Logger {
	if min <= LevelDebug {
		return next
	}
	return &leveled{next: next, min: min}
}

func (lv *leveled) Debug(msg string, keysAndValues ...interface{}) {
	if lv.min <= LevelDebug {
		lv.next.Debug(msg, keysAndValues...)
	}
}

func (lv *leveled) Info(msg string, keysAndValues ...interface{}) {
	if lv.min <= LevelInfo {
		lv.next.Info(msg, keysAndValues...)
	}
}

func (lv *leveled) Warn(msg string, keysAndValues ...interface{}) {
	if lv.min <= LevelWarn {
		lv.next.Warn(msg, keysAndValues...)
	}
}

func (lv *leveled) Error(msg string, keysAndValues ...interface{}) {
	lv.next.Error(msg, keysAndValues...)
}

func (lv *leveled) Close() error {
	return lv.next.Close()
}
