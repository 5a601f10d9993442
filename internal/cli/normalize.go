package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize [text...]",
		Short:   "Print the form of the text used for comparison",
		Example: `  palindrome normalize "Race car!"   # racecar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			text := strings.Join(args, " ")
			return a.renderer.Normalized(text, a.normalizer.Normalize(text))
		},
	}
}
