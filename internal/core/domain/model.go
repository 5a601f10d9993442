package domain

// Result holds the outcome of one palindrome evaluation.
type Result struct {
	// Input is the raw text as supplied by the caller.
	Input string
	// Normalized is the canonical comparison form of Input.
	Normalized string
	// Palindrome reports whether Normalized reads the same in both directions.
	Palindrome bool
	// Length is the number of runes in Normalized.
	Length int
}
