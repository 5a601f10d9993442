package stream

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

func newProcessor(t *testing.T, maxLine int) *LineProcessor {
	t.Helper()
	e, err := palindrome.NewEvaluator(logger.NewNopLogger(), normalizer.NewDefaultNormalizer())
	require.NoError(t, err)
	return NewLineProcessor(logger.NewNopLogger(), e, maxLine)
}

func TestProcessLines(t *testing.T) {
	input := "Anita lava la tina\r\npalabra\n\nHello, World!\nracecar"

	var got []domain.Result
	var numbers []int
	summary, err := newProcessor(t, 0).ProcessLines(context.Background(), strings.NewReader(input),
		func(line int, r domain.Result) error {
			numbers = append(numbers, line)
			got = append(got, r)
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)
	require.Len(t, got, 5)
	assert.Equal(t, "Anita lava la tina", got[0].Input)
	assert.True(t, got[0].Palindrome)
	assert.False(t, got[1].Palindrome)
	assert.True(t, got[2].Palindrome, "blank line is a palindrome")
	assert.False(t, got[3].Palindrome)
	assert.True(t, got[4].Palindrome)

	assert.Equal(t, 5, summary.Lines)
	assert.Equal(t, 3, summary.Palindromes)
	assert.Equal(t, int64(len(input)), summary.BytesProcessed)
}

func TestProcessLinesEmptyInput(t *testing.T) {
	summary, err := newProcessor(t, 0).ProcessLines(context.Background(), strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Zero(t, summary.Lines)
}

func TestProcessLinesHandlerErrorStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	summary, err := newProcessor(t, 0).ProcessLines(context.Background(), strings.NewReader("a\nb\nc\n"),
		func(int, domain.Result) error {
			calls++
			if calls == 2 {
				return stop
			}
			return nil
		})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, summary.Lines)
}

func TestProcessLinesTooLong(t *testing.T) {
	_, err := newProcessor(t, 16).ProcessLines(context.Background(), strings.NewReader(strings.Repeat("a", 64)+"\n"), nil)
	require.Error(t, err)
}

func TestProcessLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("noon\n", ContextCheckFrequency*2)
	summary, err := newProcessor(t, 0).ProcessLines(ctx, strings.NewReader(input), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, summary.Lines, ContextCheckFrequency*2)
}

func TestProcessLinesParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	words := []string{"Anita lava la tina", "palabra", "", "A man, a plan, a canal: Panama", "Hello, World!", "Ésé\r"}
	for i := 0; i < DefaultBatchSize*7+13; i++ {
		sb.WriteString(words[i%len(words)])
		sb.WriteString("\n")
	}
	input := sb.String()
	p := newProcessor(t, 0)

	type entry struct {
		line   int
		result domain.Result
	}
	collect := func(dst *[]entry) ports.LineHandler {
		return func(line int, r domain.Result) error {
			*dst = append(*dst, entry{line, r})
			return nil
		}
	}

	var sequential, parallel []entry
	seqSummary, err := p.ProcessLines(context.Background(), strings.NewReader(input), collect(&sequential))
	require.NoError(t, err)
	parSummary, err := p.ProcessLinesParallel(context.Background(), strings.NewReader(input), 4, collect(&parallel))
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, seqSummary.Lines, parSummary.Lines)
	assert.Equal(t, seqSummary.Palindromes, parSummary.Palindromes)
	assert.Equal(t, int64(len(input)), parSummary.BytesProcessed)
}

func TestProcessLinesParallelHandlerErrorStops(t *testing.T) {
	stop := errors.New("stop")
	input := strings.Repeat("noon\n", DefaultBatchSize*10)

	calls := 0
	_, err := newProcessor(t, 0).ProcessLinesParallel(context.Background(), strings.NewReader(input), 3,
		func(line int, _ domain.Result) error {
			calls++
			if line == 150 {
				return stop
			}
			return nil
		})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 150, calls)
}

func TestProcessLinesParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("noon\n", DefaultBatchSize*10)
	summary, err := newProcessor(t, 0).ProcessLinesParallel(ctx, strings.NewReader(input), 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, summary.Lines, DefaultBatchSize*10)
}

func TestProcessLinesParallelTooLong(t *testing.T) {
	input := "noon\n" + strings.Repeat("a", 64) + "\n"

	var lines []int
	_, err := newProcessor(t, 16).ProcessLinesParallel(context.Background(), strings.NewReader(input), 2,
		func(line int, _ domain.Result) error {
			lines = append(lines, line)
			return nil
		})
	require.Error(t, err)
	assert.Equal(t, []int{1}, lines, "lines before the failure are still reported")
}
