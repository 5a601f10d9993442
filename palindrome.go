// Package palindrome reports whether text reads the same forwards and
// backwards once it is normalized.
//
// Normalization keeps Unicode letters and decimal digits, lower-cases the
// letters and drops everything else:
//
//	"A man, a plan, a canal: Panama" -> "amanaplanacanalpanama"
//
// The normalized form is compared with its reverse rune by rune. Empty
// input, and input with no letters or digits at all, normalize to the empty
// string and count as palindromes.
//
// Combining marks are dropped rather than kept with their base letter, so
// text written in decomposed form loses its accents. For configurable
// normalization and live re-evaluation see the pkg/palindrome package.
package palindrome

import (
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	core "github.com/baditaflorin/go_palindrome/internal/core/palindrome"
)

// Normalize returns the lower-cased letters and digits of text in their original order.
func Normalize(text string) string {
	return normalizer.Normalize(text)
}

// IsPalindrome reports whether Normalize(text) equals its own reverse.
func IsPalindrome(text string) bool {
	return core.IsMirroredString(normalizer.Normalize(text))
}
