package palindrome

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
)

const (
	alphanumerics = "abcABC019"
	separators    = " ,.!?;:-"
)

func genText(alphabet string) gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(alphabet)-1)).Map(func(idx []int) string {
		var sb strings.Builder
		for _, i := range idx {
			sb.WriteByte(alphabet[i])
		}
		return sb.String()
	})
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// interleave inserts separator text between every rune of s.
func interleave(s, noise string) string {
	if noise == "" {
		return s
	}
	var sb strings.Builder
	for i, r := range s {
		sb.WriteByte(noise[i%len(noise)])
		sb.WriteRune(r)
	}
	sb.WriteString(noise)
	return sb.String()
}

func TestEvaluatorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4554)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	e := newTestEvaluator(t, normalizer.DefaultNormalizerType)
	text := genText(alphanumerics + separators)

	properties.Property("case variants agree", prop.ForAll(
		func(s string) bool {
			return e.IsPalindrome(strings.ToUpper(s)) == e.IsPalindrome(strings.ToLower(s))
		},
		text,
	))

	properties.Property("separators do not change the verdict", prop.ForAll(
		func(s, noise string) bool {
			return e.IsPalindrome(s) == e.IsPalindrome(interleave(s, noise))
		},
		genText(alphanumerics),
		genText(separators),
	))

	properties.Property("reversed input gets the same verdict", prop.ForAll(
		func(s string) bool {
			return e.IsPalindrome(s) == e.IsPalindrome(reverse(s))
		},
		text,
	))

	properties.Property("text followed by its reverse is a palindrome", prop.ForAll(
		func(s string) bool {
			return e.IsPalindrome(s + reverse(s))
		},
		text,
	))

	properties.Property("evaluation is repeatable", prop.ForAll(
		func(s string) bool {
			return e.Evaluate(s) == e.Evaluate(s)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
