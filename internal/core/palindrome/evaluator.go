// Package palindrome decides whether normalized text reads the same in both
// directions.
//
// Comparison is by code point. Text whose characters are built from a base
// rune plus combining marks is compared mark by mark, so a grapheme-level
// palindrome containing such sequences may be reported as false; pick the
// folding normalizer to compose what can be composed first.
package palindrome

import (
	"errors"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator normalizes input and checks the result against its reverse.
// It holds no per-evaluation state and is safe for concurrent use.
type Evaluator struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	runes      *pool.RuneBufferPool
}

// NewEvaluator creates a new palindrome evaluator.
func NewEvaluator(logger ports.Logger, normalizer ports.Normalizer) (*Evaluator, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Evaluator{
		logger:     logger,
		normalizer: normalizer,
		runes:      pool.NewRuneBufferPool(256),
	}, nil
}

// Evaluate normalizes text and reports whether the normalized form is a palindrome.
func (e *Evaluator) Evaluate(text string) domain.Result {
	normalized := e.normalizer.Normalize(text)

	buffer := e.runes.Get()
	defer e.runes.Put(buffer)
	for _, r := range normalized {
		*buffer = append(*buffer, r)
	}

	result := domain.Result{
		Input:      text,
		Normalized: normalized,
		Palindrome: IsMirrored(*buffer),
		Length:     len(*buffer),
	}

	e.logger.Debug("Evaluated input",
		"input_bytes", len(text),
		"normalized", normalized,
		"palindrome", result.Palindrome,
	)

	return result
}

// IsPalindrome is a shorthand for Evaluate(text).Palindrome.
func (e *Evaluator) IsPalindrome(text string) bool {
	return e.Evaluate(text).Palindrome
}

// IsMirrored reports whether runes equals its own reverse. Empty and
// single-rune input are mirrored.
func IsMirrored(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// IsMirroredString is IsMirrored over the runes of s, decoded from both ends
// without allocating.
func IsMirroredString(s string) bool {
	i, j := 0, len(s)
	for i < j {
		front, fw := utf8.DecodeRuneInString(s[i:j])
		back, bw := utf8.DecodeLastRuneInString(s[i:j])
		if i+fw > j-bw {
			// front and back are the same rune
			return true
		}
		if front != back {
			return false
		}
		i += fw
		j -= bw
	}
	return true
}
