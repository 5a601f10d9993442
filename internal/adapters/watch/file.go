// Package watch turns a file on disk into an input source: every time the
// file's contents change, the new contents are handed to a callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// DefaultMaxFileSize is the largest file accepted when no limit is given.
const DefaultMaxFileSize = 1024 * 1024

// ErrFileTooLarge is returned when the watched file exceeds the size limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// ChangeHandler receives the file contents after each change.
type ChangeHandler func(content string)

// FileSource watches a single file.
type FileSource struct {
	logger  ports.Logger
	path    string
	maxSize int64
}

// NewFileSource creates a source for path. A maxSize of zero or less selects
// DefaultMaxFileSize.
func NewFileSource(logger ports.Logger, path string, maxSize int64) (*FileSource, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &FileSource{logger: logger, path: abs, maxSize: maxSize}, nil
}

// Path returns the absolute path being watched.
func (s *FileSource) Path() string {
	return s.path
}

// Run reads the file once, then again after every write, create or rename
// that touches it, until ctx is done. onChange is only called when the
// contents differ from the previous call, and always from the Run goroutine.
//
// A file larger than the size limit is never passed on in part. The first
// read fails Run with ErrFileTooLarge; later oversized versions are logged
// and skipped until the file shrinks again.
func (s *FileSource) Run(ctx context.Context, onChange ChangeHandler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}

	content, err := s.read()
	if err != nil {
		return err
	}
	last := content
	onChange(content)

	s.logger.Info("Watching file", "path", s.path)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopped watching file", "path", s.path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			content, err := s.read()
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					s.logger.Debug("Watched file is gone, waiting for it to return", "path", s.path)
					continue
				}
				s.logger.Error("Failed to read watched file", "path", s.path, "max_size", s.maxSize, "error", err)
				continue
			}
			if content == last {
				continue
			}
			last = content
			onChange(content)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("File watcher error", "path", s.path, "error", err)
		}
	}
}

func (s *FileSource) read() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	// One byte past the limit tells a full file from an oversized one.
	data, err := io.ReadAll(io.LimitReader(f, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("%s: %w of %d bytes", s.path, ErrFileTooLarge, s.maxSize)
	}
	return string(data), nil
}
