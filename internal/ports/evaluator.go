package ports

import "github.com/baditaflorin/go_palindrome/internal/core/domain"

// Evaluator defines the interface for deciding palindrome status of raw input.
type Evaluator interface {
	Evaluate(text string) domain.Result
}
