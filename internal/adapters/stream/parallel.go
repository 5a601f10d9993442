package stream

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Constants for parallel processing
const (
	// DefaultBatchSize is how many lines one job carries
	DefaultBatchSize = 100

	// MaxJobQueueSize limits the number of pending jobs
	MaxJobQueueSize = 32
)

// lineJob is a batch of consecutive lines handed to a worker
type lineJob struct {
	batch int
	first int // line number of lines[0]
	lines []string
}

// lineJobResult carries the evaluated batch back to the collector
type lineJobResult struct {
	batch   int
	first   int
	results []domain.Result
}

// ProcessLinesParallel behaves like ProcessLines but evaluates batches of
// lines on a pool of workers. Results are still passed to handle one at a
// time, in input order, from the calling goroutine. workers <= 0 selects
// runtime.NumCPU(); a single worker falls back to ProcessLines.
func (p *LineProcessor) ProcessLinesParallel(ctx context.Context, reader io.Reader, workers int, handle ports.LineHandler) (ports.StreamSummary, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		return p.ProcessLines(ctx, reader, handle)
	}

	startTime := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	counter := &countingReader{r: reader}
	jobs := make(chan lineJob, MaxJobQueueSize)
	results := make(chan lineJobResult, workers)
	readErr := make(chan error, 1)

	go func() {
		defer close(jobs)
		readErr <- p.readBatches(ctx, counter, jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.lineWorker(ctx, jobs, results, &wg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var summary ports.StreamSummary
	var handleErr error
	pending := make(map[int]lineJobResult)
	next := 0

	for res := range results {
		if handleErr != nil {
			continue // drain so workers can exit
		}
		pending[res.batch] = res

		for handleErr == nil {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			for i, result := range ready.results {
				summary.Lines++
				if result.Palindrome {
					summary.Palindromes++
				}
				if handle == nil {
					continue
				}
				if err := handle(ready.first+i, result); err != nil {
					handleErr = fmt.Errorf("line %d: %w", ready.first+i, err)
					cancel()
					break
				}
			}
		}
	}

	err := <-readErr
	summary.BytesProcessed = counter.n
	summary.ProcessingTime = time.Since(startTime)

	if handleErr != nil {
		return summary, handleErr
	}
	if err != nil {
		if ctx.Err() != nil {
			p.logger.Warn("Processing cancelled by context", "error", err, "lines", summary.Lines)
		}
		return summary, err
	}

	p.logger.Debug("Processed lines in parallel",
		"lines", summary.Lines,
		"palindromes", summary.Palindromes,
		"workers", workers,
		"bytes", summary.BytesProcessed,
		"duration", summary.ProcessingTime,
	)
	return summary, nil
}

// readBatches splits the input into jobs of DefaultBatchSize lines.
func (p *LineProcessor) readBatches(ctx context.Context, reader io.Reader, jobs chan<- lineJob) error {
	scanner := p.newScanner(reader)

	batch := make([]string, 0, DefaultBatchSize)
	batchID, first, lineNo := 0, 1, 0

	send := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}
		select {
		case jobs <- lineJob{batch: batchID, first: first, lines: batch}:
		case <-ctx.Done():
			return ctx.Err()
		}
		batchID++
		first = lineNo + 1
		batch = make([]string, 0, DefaultBatchSize)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		batch = append(batch, strings.TrimSuffix(scanner.Text(), "\r"))
		if len(batch) >= DefaultBatchSize {
			if err := send(); err != nil {
				return err
			}
		}
	}

	if err := p.scanErr(scanner, lineNo+1); err != nil {
		// Lines read before the failure are still evaluated.
		if sendErr := send(); sendErr != nil {
			return sendErr
		}
		return err
	}
	return send()
}

// lineWorker evaluates jobs until the queue is closed or ctx is done.
func (p *LineProcessor) lineWorker(ctx context.Context, jobs <-chan lineJob, results chan<- lineJobResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			return
		}

		out := make([]domain.Result, len(job.lines))
		for i, line := range job.lines {
			out[i] = p.evaluator.Evaluate(line)
		}

		select {
		case results <- lineJobResult{batch: job.batch, first: job.first, results: out}:
		case <-ctx.Done():
			return
		}
	}
}
