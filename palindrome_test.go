// palindrome_test.go
package palindrome

import (
	"testing"
)

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Spanish sentence", input: "Anita lava la tina", expected: true},
		{name: "Plain word", input: "palabra", expected: false},
		{name: "Panama", input: "A man, a plan, a canal: Panama", expected: true},
		{name: "Greeting", input: "Hello, World!", expected: false},
		{name: "Empty string", input: "", expected: true},
		{name: "Only punctuation", input: "!!!", expected: true},
		{name: "Single letter", input: "a", expected: true},
		{name: "Two letters", input: "ab", expected: false},
		{name: "Accented", input: "Ésé", expected: true},
		{name: "Greek", input: "Νίψον ανομήματα μη μόναν όψιν", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPalindrome(tc.input); got != tc.expected {
				t.Errorf("IsPalindrome(%q) = %v, want %v (normalized %q)", tc.input, got, tc.expected, Normalize(tc.input))
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"", "!!!", "Anita lava la tina", "Ωμέγα, 42", "é"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
