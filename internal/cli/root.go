// Package cli implements the palindrome command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logadapter "github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/config"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/render"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Normalizer string
	Format     string
	LogLevel   string
}

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"normalizer": "normalizer",
	"format":     "format",
	"log-level":  "log.level",
}

// NewRootCommand creates the root command for the palindrome CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "palindrome",
		Short:         "Check whether text reads the same in both directions",
		Long:          "Normalizes text to its letters and digits, lower-cased, and reports whether the result is a palindrome.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./.palindrome.yml)")
	cmd.PersistentFlags().StringVar(&opts.Normalizer, "normalizer", "", "normalizer (default|ascii|folding)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewLinesCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewLiveCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// app is everything a command needs, built from the resolved configuration.
type app struct {
	cfg        *config.Config
	logger     ports.Logger
	normalizer ports.Normalizer
	evaluator  *palindrome.Evaluator
	renderer   *render.Renderer
}

// newApp resolves configuration for cmd and builds the components. The
// caller must Close the returned app.
func newApp(cmd *cobra.Command, opts *RootOptions) (*app, error) {
	v, err := config.NewViper(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	level, err := logadapter.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	std, err := logadapter.NewStdLoggerWithOptions(logadapter.Options{
		File:   cfg.Log.File,
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	logger := logadapter.WithLevel(std, level)

	typ, err := normalizer.ParseNormalizerType(cfg.Normalizer)
	if err != nil {
		logger.Close()
		return nil, err
	}
	norm := normalizer.NewNormalizerFactory().CreateNormalizer(typ)

	evaluator, err := palindrome.NewEvaluator(logger, norm)
	if err != nil {
		logger.Close()
		return nil, err
	}

	renderer, err := render.New(cmd.OutOrStdout(), render.Format(cfg.Format), render.Labels{
		Yes: cfg.Labels.Yes,
		No:  cfg.Labels.No,
	})
	if err != nil {
		logger.Close()
		return nil, err
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		normalizer: norm,
		evaluator:  evaluator,
		renderer:   renderer,
	}, nil
}

// Close flushes the logger.
func (a *app) Close() error {
	return a.logger.Close()
}
