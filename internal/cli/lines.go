package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome/internal/adapters/stream"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// NewLinesCommand creates the lines command.
func NewLinesCommand(rootOpts *RootOptions) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Check every line of a file separately",
		Long: `Reads a file, or standard input when no file or "-" is given, and prints
one result per line in input order. With --workers other than 1, lines are
evaluated in batches on that many goroutines (0 means one per CPU); output
order is unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			var reader io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer file.Close()
				reader = file
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			processor := stream.NewLineProcessor(a.logger, a.evaluator, a.cfg.MaxLineSize)
			summary, err := processor.ProcessLinesParallel(cmd.Context(), reader, workers, func(line int, result domain.Result) error {
				return a.renderer.Result(line, result)
			})
			if err != nil {
				return err
			}

			a.logger.Info("Lines processed",
				"lines", summary.Lines,
				"palindromes", summary.Palindromes,
				"bytes", summary.BytesProcessed,
				"duration", summary.ProcessingTime,
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, "evaluation goroutines (0 = one per CPU)")

	return cmd
}
