package normalizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// DefaultNormalizer keeps Unicode letters and decimal digits and lower-cases
// the letters. Everything else (whitespace, punctuation, symbols, combining
// marks) is dropped.
type DefaultNormalizer struct {
	bytePool *pool.BufferPool
}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{bytePool: pool.NewBufferPool(256)}
}

// Normalize returns the lower-cased alphanumeric runes of text in their original order.
func (n *DefaultNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	for _, r := range text {
		if isAlphanumeric(r) {
			*buffer = utf8.AppendRune(*buffer, unicode.ToLower(r))
		}
	}
	return string(*buffer)
}

// Normalize runs the default normalization without a pooled instance.
func Normalize(text string) string {
	var out []rune
	for _, r := range text {
		if isAlphanumeric(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
