// Package palindrome is the configurable public API: a Checker evaluates
// text with a chosen normalizer and hands out live Bindings that re-evaluate
// on every input change.
package palindrome

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/live"
	core "github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of one evaluation.
type Result = domain.Result

// Binding keeps a result in step with a changing input.
type Binding = live.Binding

// Subscriber receives each result a Binding publishes.
type Subscriber = live.Subscriber

// Checker evaluates text for palindrome status.
type Checker struct {
	evaluator  *core.Evaluator
	normalizer ports.Normalizer
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring a Checker.
type Option func(*checkerConfig)

type checkerConfig struct {
	Logger         ports.Logger
	Normalizer     ports.Normalizer
	NormalizerName string
	WarmUp         bool
	WarmUpConfig   warmup.WarmupConfig

	// err holds the first failure reported by an option.
	err error
}

func (cfg *checkerConfig) fail(err error) {
	if cfg.err == nil {
		cfg.err = err
	}
}

// WithLogger sets a custom logger. Without it the Checker logs nothing.
func WithLogger(l l.Logger) Option {
	return func(cfg *checkerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithDefaultLogger logs to stdout using the standard l configuration.
func WithDefaultLogger() Option {
	return func(cfg *checkerConfig) {
		std, err := logger.NewStdLogger()
		if err != nil {
			cfg.fail(err)
			return
		}
		cfg.Logger = std
	}
}

// WithLogFile appends log lines to the file at path, creating it if needed.
func WithLogFile(path string) Option {
	return func(cfg *checkerConfig) {
		std, err := logger.NewStdLoggerWithOptions(logger.Options{File: path})
		if err != nil {
			cfg.fail(err)
			return
		}
		cfg.Logger = std
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *checkerConfig) {
		cfg.Normalizer = n
	}
}

// WithNormalizerName selects a built-in normalizer: "default", "ascii" or "folding".
func WithNormalizerName(name string) Option {
	return func(cfg *checkerConfig) {
		cfg.NormalizerName = name
	}
}

// WithASCIINormalizer keeps only [a-z0-9].
func WithASCIINormalizer() Option {
	return WithNormalizerName(normalizer.ASCIINormalizerType.String())
}

// WithFoldingNormalizer uses NFC composition and full Unicode case folding.
func WithFoldingNormalizer() Option {
	return WithNormalizerName(normalizer.FoldingNormalizerType.String())
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *checkerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *checkerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a Checker. It fails when an option cannot set up its logger or
// the normalizer name is unknown.
func New(opts ...Option) (*Checker, error) {
	config := &checkerConfig{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.err != nil {
		return nil, config.err
	}

	if config.Logger == nil {
		config.Logger = logger.NewNopLogger()
	}

	if config.Normalizer == nil {
		typ, err := normalizer.ParseNormalizerType(config.NormalizerName)
		if err != nil {
			return nil, err
		}
		config.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(typ)
	}

	evaluator, err := core.NewEvaluator(config.Logger, config.Normalizer)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		evaluator:  evaluator,
		normalizer: config.Normalizer,
		logger:     config.Logger,
	}

	if config.WarmUp {
		c.WarmUp(context.Background(), config.WarmUpConfig)
	}
	return c, nil
}

// Normalize returns the canonical comparison form of text.
func (c *Checker) Normalize(text string) string {
	return c.normalizer.Normalize(text)
}

// IsPalindrome reports whether text reads the same in both directions after normalization.
func (c *Checker) IsPalindrome(text string) bool {
	return c.evaluator.IsPalindrome(text)
}

// Evaluate returns the full result for text.
func (c *Checker) Evaluate(text string) Result {
	return c.evaluator.Evaluate(text)
}

// NewBinding creates a live binding driven by this Checker. Until the first
// change, Current reports initial as the verdict.
func (c *Checker) NewBinding(initial bool) (*Binding, error) {
	return live.NewBinding(c.evaluator, domain.Result{Palindrome: initial})
}

// WarmUp exercises the normalizer and evaluator once; later calls are no-ops.
func (c *Checker) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if c.warmed {
		c.logger.Debug("Checker already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(c.logger, config)
	mgr.RegisterNormalizer(c.normalizer)
	mgr.RegisterEvaluator(c.evaluator)
	mgr.WarmUp(ctx)
	c.warmed = true
}

// Close releases the logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}
