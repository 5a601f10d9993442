package ports

import (
	"context"
	"io"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// LineHandler receives the result for one input line. Returning an error
// stops processing.
type LineHandler func(line int, result domain.Result) error

// LineProcessor evaluates every line of a stream independently.
type LineProcessor interface {
	ProcessLines(ctx context.Context, reader io.Reader, handle LineHandler) (StreamSummary, error)
}

// StreamSummary holds the totals of a line-by-line run
type StreamSummary struct {
	Lines          int
	Palindromes    int
	BytesProcessed int64
	ProcessingTime time.Duration
}
