package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

const (
	// DefaultMaxLineSize bounds a single line; longer lines fail with bufio.ErrTooLong.
	DefaultMaxLineSize = 1024 * 1024 // 1MB

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 500 // lines

	initialBufferSize = 64 * 1024
)

var _ ports.LineProcessor = (*LineProcessor)(nil)

// LineProcessor evaluates each line of a reader as an independent input.
type LineProcessor struct {
	logger      ports.Logger
	evaluator   ports.Evaluator
	maxLineSize int
}

// NewLineProcessor creates a new line processor. A maxLineSize of zero or
// less selects DefaultMaxLineSize.
func NewLineProcessor(logger ports.Logger, evaluator ports.Evaluator, maxLineSize int) *LineProcessor {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	return &LineProcessor{
		logger:      logger,
		evaluator:   evaluator,
		maxLineSize: maxLineSize,
	}
}

// countingReader records how many bytes have passed through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ProcessLines calls handle once per line, in input order, with a 1-based
// line number. A trailing carriage return is stripped from each line.
func (p *LineProcessor) ProcessLines(ctx context.Context, reader io.Reader, handle ports.LineHandler) (ports.StreamSummary, error) {
	startTime := time.Now()
	counter := &countingReader{r: reader}
	scanner := p.newScanner(counter)

	var summary ports.StreamSummary
	finish := func() ports.StreamSummary {
		summary.BytesProcessed = counter.n
		summary.ProcessingTime = time.Since(startTime)
		return summary
	}

	contextCheckCounter := 0
	for scanner.Scan() {
		contextCheckCounter++
		if contextCheckCounter >= ContextCheckFrequency {
			contextCheckCounter = 0
			if err := ctx.Err(); err != nil {
				p.logger.Warn("Processing cancelled by context", "error", err, "lines", summary.Lines)
				return finish(), err
			}
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		result := p.evaluator.Evaluate(line)
		summary.Lines++
		if result.Palindrome {
			summary.Palindromes++
		}

		if handle != nil {
			if err := handle(summary.Lines, result); err != nil {
				return finish(), fmt.Errorf("line %d: %w", summary.Lines, err)
			}
		}
	}

	if err := p.scanErr(scanner, summary.Lines+1); err != nil {
		return finish(), err
	}

	out := finish()
	p.logger.Debug("Processed lines",
		"lines", out.Lines,
		"palindromes", out.Palindromes,
		"bytes", out.BytesProcessed,
		"duration", out.ProcessingTime,
	)
	return out, nil
}

func (p *LineProcessor) newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	bufSize := initialBufferSize
	if bufSize > p.maxLineSize {
		bufSize = p.maxLineSize
	}
	scanner.Buffer(make([]byte, 0, bufSize), p.maxLineSize)
	return scanner
}

// scanErr wraps the scanner's error, if any. line is the line being read
// when it failed.
func (p *LineProcessor) scanErr(scanner *bufio.Scanner, line int) error {
	err := scanner.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		p.logger.Error("Line exceeds maximum size", "max_line_size", p.maxLineSize, "line", line)
	}
	return fmt.Errorf("failed to read input: %w", err)
}
