package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome/internal/adapters/watch"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/live"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-check a file every time it changes",
		Long: `Treats the whole file as one input. Its contents are checked now and again
after every change, until interrupted. A file larger than max_line_size is an
error when the command starts; if it grows past that limit later, the change
is logged and skipped rather than checked in part.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			source, err := watch.NewFileSource(a.logger, args[0], int64(a.cfg.MaxLineSize))
			if err != nil {
				return err
			}

			binding, err := live.NewBinding(a.evaluator, domain.Result{})
			if err != nil {
				return err
			}
			binding.Subscribe(func(result domain.Result) {
				if err := a.renderer.Result(0, result); err != nil {
					a.logger.Error("Failed to write result", "error", err)
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchFile(ctx, source, binding)
		},
	}
}

func watchFile(ctx context.Context, source *watch.FileSource, binding *live.Binding) error {
	return source.Run(ctx, func(content string) {
		binding.OnInputChange(content)
	})
}
