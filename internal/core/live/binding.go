// Package live keeps a palindrome verdict in step with a changing input value.
//
// A Binding belongs to one input source (a text field, a socket, a watched
// file). Each change is evaluated synchronously and pushed to every
// subscriber before OnInputChange returns, so listeners observe results in
// the same order as the changes that produced them.
package live

import (
	"errors"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// State is the lifecycle position of a Binding.
type State int

const (
	// Awaiting means no input change has been evaluated yet.
	Awaiting State = iota
	// Evaluated means at least one input change has been evaluated.
	Evaluated
)

func (s State) String() string {
	if s == Evaluated {
		return "evaluated"
	}
	return "awaiting"
}

// Subscriber receives every published result.
type Subscriber func(domain.Result)

// Binding re-evaluates its input on every change. It is not safe for
// concurrent use.
type Binding struct {
	evaluator   ports.Evaluator
	current     domain.Result
	state       State
	subscribers []Subscriber
}

// NewBinding creates a binding in the Awaiting state. initial is what
// Current reports until the first change arrives.
func NewBinding(evaluator ports.Evaluator, initial domain.Result) (*Binding, error) {
	if evaluator == nil {
		return nil, errors.New("evaluator is required")
	}
	return &Binding{
		evaluator: evaluator,
		current:   initial,
		state:     Awaiting,
	}, nil
}

// Subscribe registers fn for all results published after this call.
func (b *Binding) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	b.subscribers = append(b.subscribers, fn)
}

// OnInputChange evaluates value, stores it as the current result and
// publishes it to subscribers in registration order.
func (b *Binding) OnInputChange(value string) domain.Result {
	result := b.evaluator.Evaluate(value)
	b.current = result
	b.state = Evaluated

	for _, fn := range b.subscribers {
		fn(result)
	}
	return result
}

// Current returns the latest result and whether any change has been evaluated.
func (b *Binding) Current() (domain.Result, bool) {
	return b.current, b.state == Evaluated
}

// State reports the lifecycle position of the binding.
func (b *Binding) State() State {
	return b.state
}
