package normalizer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// maxFoldPasses bounds the passes Normalize makes looking for a stable form.
const maxFoldPasses = 4

// FoldingNormalizer applies full Unicode case folding instead of per-rune
// lower-casing. Input is composed to NFC first so that a base letter followed
// by a combining accent survives as one precomposed letter; the result is
// composed again because dropping marks can leave composable sequences.
//
// Folding may expand a rune ("ß" folds to "ss"). Sequences with no
// precomposed form still lose their marks.
//
// Case folding does not always pick the lower-case form: Cherokee folds to
// upper case, while "ꭰ" and "Ꭰ" lower-case to the same rune. Every kept rune
// is therefore lower-cased after folding, and the pass is repeated until the
// output no longer changes.
type FoldingNormalizer struct {
	bytePool *pool.BufferPool
}

// NewFoldingNormalizer creates a new case-folding normalizer
func NewFoldingNormalizer() ports.Normalizer {
	return &FoldingNormalizer{bytePool: pool.NewBufferPool(256)}
}

// Normalize composes, folds and filters text.
func (n *FoldingNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	out := n.fold(text)
	for i := 1; i < maxFoldPasses; i++ {
		next := n.fold(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func (n *FoldingNormalizer) fold(text string) string {
	// A Caser keeps state between calls and must not be shared.
	folded := cases.Fold().String(norm.NFC.String(text))

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	for _, r := range folded {
		if isAlphanumeric(r) {
			*buffer = utf8.AppendRune(*buffer, unicode.ToLower(r))
		}
	}
	return norm.NFC.String(string(*buffer))
}
