package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Stdin bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Report whether the text is a palindrome",
		Long: `Joins the arguments with single spaces and reports whether the result is
a palindrome. With --stdin the whole of standard input is one text.
The exit status does not depend on the verdict.`,
		Example: `  palindrome check "Anita lava la tina"
  echo "A man, a plan, a canal: Panama" | palindrome check --stdin --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read the text from standard input")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, args []string) error {
	text := strings.Join(args, " ")
	if opts.Stdin {
		if len(args) > 0 {
			return fmt.Errorf("--stdin cannot be combined with text arguments")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	a, err := newApp(cmd, opts.RootOptions)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.renderer.Result(0, a.evaluator.Evaluate(text))
}
