package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/live"
	"github.com/baditaflorin/go_palindrome/internal/tui"
)

// NewLiveCommand creates the interactive live command.
func NewLiveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Type text and watch the verdict update on every keystroke",
		Long: `Opens a text field in the terminal. Every edit re-evaluates the text and
shows the yes or no label. Enter or Esc quits and prints the final result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			binding, err := live.NewBinding(a.evaluator, domain.Result{})
			if err != nil {
				return err
			}

			program := tea.NewProgram(
				tui.New(binding, a.renderer.Labels()),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("live session failed: %w", err)
			}

			if result, evaluated := binding.Current(); evaluated {
				return a.renderer.Result(0, result)
			}
			return nil
		},
	}
}
