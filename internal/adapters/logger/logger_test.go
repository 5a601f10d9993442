package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines  []string
	closed bool
}

func (r *recordingLogger) Debug(msg string, _ ...interface{}) { r.lines = append(r.lines, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, _ ...interface{})  { r.lines = append(r.lines, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, _ ...interface{})  { r.lines = append(r.lines, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, _ ...interface{}) { r.lines = append(r.lines, "error:"+msg) }
func (r *recordingLogger) Close() error                       { r.closed = true; return nil }

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" warn ":  LevelWarn,
		"error":   LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestWithLevelFilters(t *testing.T) {
	rec := &recordingLogger{}
	log := WithLevel(rec, LevelWarn)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
	require.NoError(t, log.Close())

	assert.Equal(t, []string{"warn:w", "error:e"}, rec.lines)
	assert.True(t, rec.closed)
}

func TestWithLevelDebugIsPassthrough(t *testing.T) {
	rec := &recordingLogger{}
	assert.Same(t, rec, WithLevel(rec, LevelDebug))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Debug("ignored", "k", 1)
	log.Error("ignored")
	assert.NoError(t, log.Close())
}
