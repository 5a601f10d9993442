package warmup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
)

func TestWarmUpRunsEveryComponent(t *testing.T) {
	n := normalizer.NewDefaultNormalizer()
	e, err := palindrome.NewEvaluator(logger.NewNopLogger(), n)
	require.NoError(t, err)

	m := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 2, Iterations: 10})
	m.RegisterNormalizer(n)
	m.RegisterEvaluator(e)

	assert.Equal(t, 2*10*2, m.WarmUp(context.Background()))
}

func TestWarmUpStopsOnCancelledContext(t *testing.T) {
	n := normalizer.NewDefaultNormalizer()
	m := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 0, Iterations: 1000})
	m.RegisterNormalizer(n)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Zero(t, m.WarmUp(ctx))
}

func TestGeneratePalindrome(t *testing.T) {
	e, err := palindrome.NewEvaluator(logger.NewNopLogger(), normalizer.NewDefaultNormalizer())
	require.NoError(t, err)

	assert.True(t, e.IsPalindrome(generatePalindrome(200)))
	assert.GreaterOrEqual(t, len(generateSampleText(50)), 50)
}
